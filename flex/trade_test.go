// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newRawStockTrade() *rawTrade {
	return &rawTrade{
		AccountID:     "U1234567",
		Conid:         "265598",
		Symbol:        "AAPL",
		AssetCategory: "STK",
		Currency:      "USD",
	}
}

func TestDecodeTrade(t *testing.T) {
	t.Parallel()
	raw := newRawStockTrade()
	raw.TradeDate = "2025-01-15"
	raw.SettleDateTarget = "20250117"
	raw.BuySell = "BUY"
	raw.OpenCloseIndicator = "O"
	raw.TransactionType = "ExchTrade"
	raw.Quantity = "100"
	raw.TradePrice = "185.50"
	raw.Proceeds = "-18550"
	raw.IBCommission = "-1.00"
	raw.Notes = "P"
	raw.OrderType = "LMT"
	raw.IsAPIOrder = "N"
	raw.LevelOfDetail = "EXECUTION"

	trade, err := newTestDecoder().decodeTrade("Trade", raw)
	require.NoError(t, err)
	require.Equal(t, "U1234567", trade.AccountID)
	require.Equal(t, "265598", trade.Conid)
	require.Equal(t, "AAPL", trade.Symbol)
	require.Equal(t, AssetCategoryStock, trade.AssetCategory)
	require.Equal(t, "USD", trade.Currency)
	require.Equal(t, &Date{2025, 1, 15}, trade.TradeDate)
	require.Equal(t, &Date{2025, 1, 17}, trade.SettleDateTarget)
	require.Equal(t, BuySellBuy, trade.BuySell)
	require.Equal(t, OpenCloseOpen, trade.OpenCloseIndicator)
	require.Equal(t, TradeTypeExchTrade, trade.TransactionType)
	require.Equal(t, "100", trade.Quantity.String())
	require.Equal(t, "185.5", trade.TradePrice.String())
	require.Equal(t, "-18550", trade.Proceeds.String())
	require.Equal(t, "-1", trade.IBCommission.String())
	require.Equal(t, []TransactionCode{TransactionCodeOpening}, trade.Notes)
	require.Equal(t, OrderTypeLimit, trade.OrderType)
	require.NotNil(t, trade.IsAPIOrder)
	require.False(t, *trade.IsAPIOrder)
	require.Equal(t, LevelOfDetailExecution, trade.LevelOfDetail)
	// Omitted optionals stay unset.
	require.Nil(t, trade.Strike)
	require.Nil(t, trade.Expiry)
	require.Empty(t, trade.PutCall)
	require.Nil(t, trade.Cost)
}

func TestDecodeTradeMissingMandatory(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()
	for _, clear := range []struct {
		attr  string
		apply func(*rawTrade)
	}{
		{"accountId", func(raw *rawTrade) { raw.AccountID = "" }},
		{"conid", func(raw *rawTrade) { raw.Conid = "" }},
		{"symbol", func(raw *rawTrade) { raw.Symbol = "" }},
		{"assetCategory", func(raw *rawTrade) { raw.AssetCategory = "" }},
		{"currency", func(raw *rawTrade) { raw.Currency = "" }},
	} {
		raw := newRawStockTrade()
		clear.apply(raw)
		_, err := c.decodeTrade("Trade", raw)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr, clear.attr)
		require.Equal(t, clear.attr, decodeErr.Attr)
	}
}

func TestDecodeTradeValueErrors(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()

	raw := newRawStockTrade()
	raw.TradeDate = "Jan 15 2025"
	_, err := c.decodeTrade("Trade", raw)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "tradeDate", decodeErr.Attr)

	raw = newRawStockTrade()
	raw.TradePrice = "185.5.0"
	_, err = c.decodeTrade("Trade", raw)
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "tradePrice", decodeErr.Attr)

	raw = newRawStockTrade()
	raw.IsAPIOrder = "true"
	_, err = c.decodeTrade("Trade", raw)
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "isAPIOrder", decodeErr.Attr)
}

func TestDecodeTradeUnknownEnumIsNotFatal(t *testing.T) {
	t.Parallel()
	raw := newRawStockTrade()
	raw.AssetCategory = "NEWKIND"
	raw.BuySell = "HOLD"
	trade, err := newTestDecoder().decodeTrade("Trade", raw)
	require.NoError(t, err)
	require.Equal(t, AssetCategoryUnknown, trade.AssetCategory)
	require.Equal(t, BuySellUnknown, trade.BuySell)
}

func TestTradeDerivative(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()

	newRawOptionTrade := func() *rawTrade {
		raw := newRawStockTrade()
		raw.Conid = "654321"
		raw.Symbol = "AAPL  250620C00200000"
		raw.AssetCategory = "OPT"
		raw.Strike = "200"
		raw.Expiry = "20250620"
		raw.PutCall = "C"
		raw.UnderlyingSymbol = "AAPL"
		raw.UnderlyingConid = "265598"
		return raw
	}

	trade, err := c.decodeTrade("Trade", newRawOptionTrade())
	require.NoError(t, err)
	info, ok := trade.Derivative()
	require.True(t, ok)
	require.Equal(t, "200", info.Strike.String())
	require.Equal(t, &Date{2025, 6, 20}, info.Expiry)
	require.Equal(t, PutCallCall, info.PutCall)
	require.Equal(t, "AAPL", info.UnderlyingSymbol)
	require.Equal(t, "265598", info.UnderlyingConid)

	// Removing any required derivative field fails the projection whole.
	for _, clear := range []func(*rawTrade){
		func(raw *rawTrade) { raw.Strike = "" },
		func(raw *rawTrade) { raw.Expiry = "" },
		func(raw *rawTrade) { raw.PutCall = "" },
		func(raw *rawTrade) { raw.UnderlyingSymbol = "" },
	} {
		raw := newRawOptionTrade()
		clear(raw)
		trade, err := c.decodeTrade("Trade", raw)
		require.NoError(t, err)
		info, ok := trade.Derivative()
		require.False(t, ok)
		require.Equal(t, DerivativeInfo{}, info)
	}

	// Futures need only expiry and underlying.
	raw := newRawStockTrade()
	raw.AssetCategory = "FUT"
	raw.Symbol = "ESZ5"
	raw.Expiry = "2025-12-19"
	raw.UnderlyingSymbol = "ES"
	trade, err = c.decodeTrade("Trade", raw)
	require.NoError(t, err)
	info, ok = trade.Derivative()
	require.True(t, ok)
	require.Nil(t, info.Strike)
	require.Equal(t, &Date{2025, 12, 19}, info.Expiry)
	require.Empty(t, info.PutCall)
	require.Equal(t, "ES", info.UnderlyingSymbol)

	// Warrants need only the underlying; strike and expiry pass through.
	raw = newRawStockTrade()
	raw.AssetCategory = "WAR"
	raw.UnderlyingSymbol = "TSLA"
	trade, err = c.decodeTrade("Trade", raw)
	require.NoError(t, err)
	info, ok = trade.Derivative()
	require.True(t, ok)
	require.Nil(t, info.Strike)
	require.Nil(t, info.Expiry)
	require.Equal(t, "TSLA", info.UnderlyingSymbol)

	// Non-derivative categories never project.
	trade, err = c.decodeTrade("Trade", newRawStockTrade())
	require.NoError(t, err)
	_, ok = trade.Derivative()
	require.False(t, ok)
}
