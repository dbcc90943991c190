// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

// rawTrade mirrors a trade-shaped element exactly as it appears on the wire.
// The same shape is used for Trade and WashSale elements, and for the Order,
// SymbolSummary, AssetSummary, and Lot elements that are recognized but
// discarded.
type rawTrade struct {
	AccountID             string `xml:"accountId,attr"`
	TransactionID         string `xml:"transactionID,attr"`
	Conid                 string `xml:"conid,attr"`
	Symbol                string `xml:"symbol,attr"`
	Description           string `xml:"description,attr"`
	AssetCategory         string `xml:"assetCategory,attr"`
	SubCategory           string `xml:"subCategory,attr"`
	CUSIP                 string `xml:"cusip,attr"`
	ISIN                  string `xml:"isin,attr"`
	FIGI                  string `xml:"figi,attr"`
	SecurityID            string `xml:"securityID,attr"`
	SecurityIDType        string `xml:"securityIDType,attr"`
	Multiplier            string `xml:"multiplier,attr"`
	Strike                string `xml:"strike,attr"`
	Expiry                string `xml:"expiry,attr"`
	PutCall               string `xml:"putCall,attr"`
	UnderlyingConid       string `xml:"underlyingConid,attr"`
	UnderlyingSymbol      string `xml:"underlyingSymbol,attr"`
	TradeDate             string `xml:"tradeDate,attr"`
	SettleDateTarget      string `xml:"settleDateTarget,attr"`
	ReportDate            string `xml:"reportDate,attr"`
	DateTime              string `xml:"dateTime,attr"`
	OrderTime             string `xml:"orderTime,attr"`
	BuySell               string `xml:"buySell,attr"`
	OpenCloseIndicator    string `xml:"openCloseIndicator,attr"`
	TransactionType       string `xml:"transactionType,attr"`
	Quantity              string `xml:"quantity,attr"`
	TradePrice            string `xml:"tradePrice,attr"`
	TradeMoney            string `xml:"tradeMoney,attr"`
	Proceeds              string `xml:"proceeds,attr"`
	Cost                  string `xml:"cost,attr"`
	ClosePrice            string `xml:"closePrice,attr"`
	IBCommission          string `xml:"ibCommission,attr"`
	IBCommissionCurrency  string `xml:"ibCommissionCurrency,attr"`
	Taxes                 string `xml:"taxes,attr"`
	NetCash               string `xml:"netCash,attr"`
	AccruedInterest       string `xml:"accruedInt,attr"`
	FifoPnlRealized       string `xml:"fifoPnlRealized,attr"`
	MtmPnl                string `xml:"mtmPnl,attr"`
	FxPnl                 string `xml:"fxPnl,attr"`
	Currency              string `xml:"currency,attr"`
	FxRateToBase          string `xml:"fxRateToBase,attr"`
	OrigTradeDate         string `xml:"origTradeDate,attr"`
	OrigTradePrice        string `xml:"origTradePrice,attr"`
	OrigTradeID           string `xml:"origTradeID,attr"`
	HoldingPeriodDateTime string `xml:"holdingPeriodDateTime,attr"`
	OpenDateTime          string `xml:"openDateTime,attr"`
	WhenRealized          string `xml:"whenRealized,attr"`
	WhenReopened          string `xml:"whenReopened,attr"`
	Notes                 string `xml:"notes,attr"`
	IBOrderID             string `xml:"ibOrderID,attr"`
	IBExecID              string `xml:"ibExecID,attr"`
	ExecID                string `xml:"execID,attr"`
	TradeID               string `xml:"tradeID,attr"`
	OrderType             string `xml:"orderType,attr"`
	OrderReference        string `xml:"orderReference,attr"`
	Exchange              string `xml:"exchange,attr"`
	ListingExchange       string `xml:"listingExchange,attr"`
	TraderID              string `xml:"traderID,attr"`
	IsAPIOrder            string `xml:"isAPIOrder,attr"`
	LevelOfDetail         string `xml:"levelOfDetail,attr"`
	Issuer                string `xml:"issuer,attr"`
	IssuerCountryCode     string `xml:"issuerCountryCode,attr"`
	PrincipalAdjustFactor string `xml:"principalAdjustFactor,attr"`
	Model                 string `xml:"model,attr"`
	AccountAlias          string `xml:"acctAlias,attr"`
}

// Trade is a single trade execution (or wash-sale adjustment record) from
// the Trades section.
//
// AccountID, Conid, Symbol, AssetCategory, and Currency are always present.
// Everything else is optional on the wire: pointer fields and code-table
// fields are nil or empty when the statement omitted them, and summary rows
// legitimately omit fields like TradeDate and Quantity.
type Trade struct {
	AccountID             string
	TransactionID         string
	Conid                 string
	Symbol                string
	Description           string
	AssetCategory         AssetCategory
	SubCategory           SubCategory
	CUSIP                 string
	ISIN                  string
	FIGI                  string
	SecurityID            string
	SecurityIDType        SecurityIDType
	Multiplier            *decimal.Decimal
	Strike                *decimal.Decimal
	Expiry                *Date
	PutCall               PutCall
	UnderlyingConid       string
	UnderlyingSymbol      string
	TradeDate             *Date
	SettleDateTarget      *Date
	ReportDate            *Date
	DateTime              string
	OrderTime             string
	BuySell               BuySell
	OpenCloseIndicator    OpenClose
	TransactionType       TradeType
	Quantity              *decimal.Decimal
	TradePrice            *decimal.Decimal
	TradeMoney            *decimal.Decimal
	Proceeds              *decimal.Decimal
	Cost                  *decimal.Decimal
	ClosePrice            *decimal.Decimal
	IBCommission          *decimal.Decimal
	IBCommissionCurrency  string
	Taxes                 *decimal.Decimal
	NetCash               *decimal.Decimal
	AccruedInterest       *decimal.Decimal
	FifoPnlRealized       *decimal.Decimal
	MtmPnl                *decimal.Decimal
	FxPnl                 *decimal.Decimal
	Currency              string
	FxRateToBase          *decimal.Decimal
	OrigTradeDate         *Date
	OrigTradePrice        *decimal.Decimal
	OrigTradeID           string
	HoldingPeriodDateTime string
	OpenDateTime          string
	WhenRealized          string
	WhenReopened          string
	Notes                 []TransactionCode
	IBOrderID             string
	IBExecID              string
	ExecID                string
	TradeID               string
	OrderType             OrderType
	OrderReference        string
	Exchange              string
	ListingExchange       string
	TraderID              string
	IsAPIOrder            *bool
	LevelOfDetail         LevelOfDetail
	Issuer                string
	IssuerCountryCode     string
	PrincipalAdjustFactor *decimal.Decimal
	Model                 string
	AccountAlias          string
}

// Derivative projects the trade's flat derivative attributes into a
// DerivativeInfo. It returns false for non-derivative asset categories and
// for derivative trades missing any required field, so the returned value
// is never partially populated.
func (t *Trade) Derivative() (DerivativeInfo, bool) {
	return derivativeInfo(
		t.AssetCategory,
		t.Strike,
		t.Expiry,
		t.PutCall,
		t.UnderlyingSymbol,
		t.UnderlyingConid,
	)
}

func (c *decoder) decodeTrade(element string, raw *rawTrade) (Trade, error) {
	var trade Trade
	var err error
	if trade.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return Trade{}, err
	}
	if trade.Conid, err = c.required(element, "conid", raw.Conid); err != nil {
		return Trade{}, err
	}
	if trade.Symbol, err = c.required(element, "symbol", raw.Symbol); err != nil {
		return Trade{}, err
	}
	if _, err = c.required(element, "assetCategory", raw.AssetCategory); err != nil {
		return Trade{}, err
	}
	if trade.Currency, err = c.required(element, "currency", raw.Currency); err != nil {
		return Trade{}, err
	}
	trade.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	trade.TransactionID = raw.TransactionID
	trade.Description = raw.Description
	trade.SubCategory = c.optionalSubCategory(element, "subCategory", raw.SubCategory)
	trade.CUSIP = raw.CUSIP
	trade.ISIN = raw.ISIN
	trade.FIGI = raw.FIGI
	trade.SecurityID = raw.SecurityID
	trade.SecurityIDType = c.optionalSecurityIDType(element, "securityIDType", raw.SecurityIDType)
	if trade.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return Trade{}, err
	}
	if trade.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return Trade{}, err
	}
	if trade.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return Trade{}, err
	}
	trade.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	trade.UnderlyingConid = raw.UnderlyingConid
	trade.UnderlyingSymbol = raw.UnderlyingSymbol
	if trade.TradeDate, err = c.optionalDate(element, "tradeDate", raw.TradeDate); err != nil {
		return Trade{}, err
	}
	if trade.SettleDateTarget, err = c.optionalDate(element, "settleDateTarget", raw.SettleDateTarget); err != nil {
		return Trade{}, err
	}
	if trade.ReportDate, err = c.optionalDate(element, "reportDate", raw.ReportDate); err != nil {
		return Trade{}, err
	}
	trade.DateTime = raw.DateTime
	trade.OrderTime = raw.OrderTime
	trade.BuySell = c.optionalBuySell(element, "buySell", raw.BuySell)
	trade.OpenCloseIndicator = c.optionalOpenClose(element, "openCloseIndicator", raw.OpenCloseIndicator)
	trade.TransactionType = c.optionalTradeType(element, "transactionType", raw.TransactionType)
	if trade.Quantity, err = c.optionalDecimal(element, "quantity", raw.Quantity); err != nil {
		return Trade{}, err
	}
	if trade.TradePrice, err = c.optionalDecimal(element, "tradePrice", raw.TradePrice); err != nil {
		return Trade{}, err
	}
	if trade.TradeMoney, err = c.optionalDecimal(element, "tradeMoney", raw.TradeMoney); err != nil {
		return Trade{}, err
	}
	if trade.Proceeds, err = c.optionalDecimal(element, "proceeds", raw.Proceeds); err != nil {
		return Trade{}, err
	}
	if trade.Cost, err = c.optionalDecimal(element, "cost", raw.Cost); err != nil {
		return Trade{}, err
	}
	if trade.ClosePrice, err = c.optionalDecimal(element, "closePrice", raw.ClosePrice); err != nil {
		return Trade{}, err
	}
	if trade.IBCommission, err = c.optionalDecimal(element, "ibCommission", raw.IBCommission); err != nil {
		return Trade{}, err
	}
	trade.IBCommissionCurrency = raw.IBCommissionCurrency
	if trade.Taxes, err = c.optionalDecimal(element, "taxes", raw.Taxes); err != nil {
		return Trade{}, err
	}
	if trade.NetCash, err = c.optionalDecimal(element, "netCash", raw.NetCash); err != nil {
		return Trade{}, err
	}
	if trade.AccruedInterest, err = c.optionalDecimal(element, "accruedInt", raw.AccruedInterest); err != nil {
		return Trade{}, err
	}
	if trade.FifoPnlRealized, err = c.optionalDecimal(element, "fifoPnlRealized", raw.FifoPnlRealized); err != nil {
		return Trade{}, err
	}
	if trade.MtmPnl, err = c.optionalDecimal(element, "mtmPnl", raw.MtmPnl); err != nil {
		return Trade{}, err
	}
	if trade.FxPnl, err = c.optionalDecimal(element, "fxPnl", raw.FxPnl); err != nil {
		return Trade{}, err
	}
	if trade.FxRateToBase, err = c.optionalDecimal(element, "fxRateToBase", raw.FxRateToBase); err != nil {
		return Trade{}, err
	}
	if trade.OrigTradeDate, err = c.optionalDate(element, "origTradeDate", raw.OrigTradeDate); err != nil {
		return Trade{}, err
	}
	if trade.OrigTradePrice, err = c.optionalDecimal(element, "origTradePrice", raw.OrigTradePrice); err != nil {
		return Trade{}, err
	}
	trade.OrigTradeID = raw.OrigTradeID
	trade.HoldingPeriodDateTime = raw.HoldingPeriodDateTime
	trade.OpenDateTime = raw.OpenDateTime
	trade.WhenRealized = raw.WhenRealized
	trade.WhenReopened = raw.WhenReopened
	trade.Notes = c.codes(element, "notes", raw.Notes)
	trade.IBOrderID = raw.IBOrderID
	trade.IBExecID = raw.IBExecID
	trade.ExecID = raw.ExecID
	trade.TradeID = raw.TradeID
	trade.OrderType = c.optionalOrderType(element, "orderType", raw.OrderType)
	trade.OrderReference = raw.OrderReference
	trade.Exchange = raw.Exchange
	trade.ListingExchange = raw.ListingExchange
	trade.TraderID = raw.TraderID
	if trade.IsAPIOrder, err = c.optionalBool(element, "isAPIOrder", raw.IsAPIOrder); err != nil {
		return Trade{}, err
	}
	trade.LevelOfDetail = c.optionalLevelOfDetail(element, "levelOfDetail", raw.LevelOfDetail)
	trade.Issuer = raw.Issuer
	trade.IssuerCountryCode = raw.IssuerCountryCode
	if trade.PrincipalAdjustFactor, err = c.optionalDecimal(element, "principalAdjustFactor", raw.PrincipalAdjustFactor); err != nil {
		return Trade{}, err
	}
	trade.Model = raw.Model
	trade.AccountAlias = raw.AccountAlias
	return trade, nil
}
