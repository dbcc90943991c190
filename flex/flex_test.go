// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseActivityFile(t *testing.T) {
	t.Parallel()
	data, err := os.ReadFile("testdata/activity.xml")
	require.NoError(t, err)

	statement, err := NewParser().ParseActivity(data)
	require.NoError(t, err)
	require.Equal(t, "U1234567", statement.AccountID)
	require.Equal(t, Date{2025, 1, 1}, statement.FromDate)
	require.Equal(t, Date{2025, 1, 31}, statement.ToDate)
	// The generation timestamp is kept verbatim.
	require.Equal(t, "2025-02-01;043015", statement.WhenGenerated)

	// Only Trade elements land in Trades: the Order, SymbolSummary, and Lot
	// rows are discarded, and the WashSale goes to its own bucket.
	require.Len(t, statement.Trades, 2)
	aapl := statement.Trades[0]
	require.Equal(t, "AAPL", aapl.Symbol)
	require.Equal(t, AssetCategoryStock, aapl.AssetCategory)
	require.Equal(t, BuySellBuy, aapl.BuySell)
	require.Equal(t, "100", aapl.Quantity.String())
	require.Equal(t, "185.5", aapl.TradePrice.String())
	require.Equal(t, "-18550", aapl.Proceeds.String())
	require.Equal(t, &Date{2025, 1, 15}, aapl.TradeDate)
	require.Equal(t, []TransactionCode{TransactionCodeOpening}, aapl.Notes)

	option := statement.Trades[1]
	require.Equal(t, AssetCategoryOption, option.AssetCategory)
	info, ok := option.Derivative()
	require.True(t, ok)
	require.Equal(t, "200", info.Strike.String())
	require.Equal(t, &Date{2025, 6, 20}, info.Expiry)
	require.Equal(t, PutCallCall, info.PutCall)
	require.Equal(t, "AAPL", info.UnderlyingSymbol)

	require.Len(t, statement.WashSales, 1)
	require.Equal(t, "MSFT", statement.WashSales[0].Symbol)
	require.Equal(
		t,
		[]TransactionCode{TransactionCodeClosing, TransactionCodeWashSale},
		statement.WashSales[0].Notes,
	)

	require.Len(t, statement.OpenPositions, 2)
	require.Equal(t, "100", statement.OpenPositions[0].Quantity.String())
	require.Equal(t, LongShortLong, statement.OpenPositions[0].Side)
	require.Equal(t, Date{2025, 1, 31}, statement.OpenPositions[0].ReportDate)
	require.Equal(t, LongShortShort, statement.OpenPositions[1].Side)
	_, ok = statement.OpenPositions[1].Derivative()
	require.True(t, ok)

	require.Len(t, statement.CashTransactions, 3)
	require.Equal(t, CashTransactionTypeDividends, statement.CashTransactions[0].Type)
	require.Equal(t, "25", statement.CashTransactions[0].Amount.String())
	require.Equal(t, &Date{2025, 1, 10}, statement.CashTransactions[0].ExDate)
	require.Equal(t, CashTransactionTypeWithholdingTax, statement.CashTransactions[1].Type)
	require.Equal(t, CashTransactionTypeDepositsWithdrawals, statement.CashTransactions[2].Type)
	require.Empty(t, statement.CashTransactions[2].Symbol)

	require.Len(t, statement.CorporateActions, 1)
	require.Equal(t, CorporateActionTypeForwardSplit, statement.CorporateActions[0].Type)

	require.Len(t, statement.Transfers, 1)
	require.Equal(t, TransferTypeACATS, statement.Transfers[0].Type)
	require.Equal(t, "25", statement.Transfers[0].Quantity.String())
	require.Equal(t, Date{2025, 1, 8}, statement.Transfers[0].Date)

	require.Len(t, statement.OptionExercises, 1)
	require.Equal(t, OptionActionAssignment, statement.OptionExercises[0].Type)
	require.Equal(t, PutCallPut, statement.OptionExercises[0].PutCall)

	require.Len(t, statement.SecuritiesInfo, 2)
	require.Equal(t, SecurityIDTypeISIN, statement.SecuritiesInfo[0].SecurityIDType)

	require.Len(t, statement.ConversionRates, 2)
	require.Equal(t, "EUR", statement.ConversionRates[0].FromCurrency)
	require.Equal(t, "1.0395", statement.ConversionRates[0].Rate.String())
}

func TestParseActivityStatementsMulti(t *testing.T) {
	t.Parallel()
	data := []byte(`<FlexQueryResponse queryName="Multi" type="AF">
<FlexStatements count="2">
<FlexStatement accountId="U1111111" fromDate="2025-01-01" toDate="2025-01-31" whenGenerated="2025-02-01;040000"><Trades/></FlexStatement>
<FlexStatement accountId="U2222222" fromDate="20250101" toDate="20250131" whenGenerated="2025-02-01;040000"><Trades/></FlexStatement>
</FlexStatements>
</FlexQueryResponse>`)
	parser := NewParser()
	statements, err := parser.ParseActivityStatements(data)
	require.NoError(t, err)
	require.Len(t, statements, 2)
	require.Equal(t, "U1111111", statements[0].AccountID)
	require.Equal(t, "U2222222", statements[1].AccountID)
	// Both date forms decode identically.
	require.Equal(t, statements[0].FromDate, statements[1].FromDate)
	require.Equal(t, statements[0].ToDate, statements[1].ToDate)

	// ParseActivity returns the first statement.
	first, err := parser.ParseActivity(data)
	require.NoError(t, err)
	require.Equal(t, "U1111111", first.AccountID)
}

func TestParseActivityEmptyAndAbsentSectionsEqual(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	withEmpty, err := parser.ParseActivity([]byte(`<FlexQueryResponse>
<FlexStatements count="1">
<FlexStatement accountId="U1234567" fromDate="2025-01-01" toDate="2025-01-31" whenGenerated="2025-02-01;040000">
<Trades/><OpenPositions/><CashTransactions/>
</FlexStatement>
</FlexStatements>
</FlexQueryResponse>`))
	require.NoError(t, err)
	withAbsent, err := parser.ParseActivity([]byte(`<FlexQueryResponse>
<FlexStatements count="1">
<FlexStatement accountId="U1234567" fromDate="2025-01-01" toDate="2025-01-31" whenGenerated="2025-02-01;040000"/>
</FlexStatements>
</FlexQueryResponse>`))
	require.NoError(t, err)
	require.Equal(t, withEmpty, withAbsent)
}

func TestParseActivityErrors(t *testing.T) {
	t.Parallel()
	parser := NewParser()

	_, err := parser.ParseActivityStatements([]byte(`<FlexQueryResponse><FlexStatements count="0"/></FlexQueryResponse>`))
	require.ErrorIs(t, err, ErrNoStatements)

	_, err = parser.ParseActivityStatements([]byte(`<SomethingElse/>`))
	require.ErrorContains(t, err, `unknown root element "SomethingElse"`)

	_, err = parser.ParseActivityStatements([]byte(``))
	require.ErrorContains(t, err, "no root element")

	_, err = parser.ParseActivityStatements([]byte(`<FlexQueryResponse><FlexStatements>`))
	require.Error(t, err)

	// Missing mandatory statement attribute.
	_, err = parser.ParseActivityStatements([]byte(`<FlexQueryResponse>
<FlexStatements count="1">
<FlexStatement fromDate="2025-01-01" toDate="2025-01-31" whenGenerated="2025-02-01;040000"/>
</FlexStatements>
</FlexQueryResponse>`))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "accountId", decodeErr.Attr)

	// An inverted reporting period is a structural error.
	_, err = parser.ParseActivityStatements([]byte(`<FlexQueryResponse>
<FlexStatements count="1">
<FlexStatement accountId="U1234567" fromDate="2025-02-01" toDate="2025-01-31" whenGenerated="2025-02-01;040000"/>
</FlexStatements>
</FlexQueryResponse>`))
	require.ErrorAs(t, err, &decodeErr)
	require.ErrorContains(t, err, "fromDate follows toDate")
}

func TestParseTradeConfirmation(t *testing.T) {
	t.Parallel()
	data := []byte(`<TradeConfirmationStatement accountId="U1234567">
<Trades>
<Trade accountId="U1234567" conid="265598" symbol="AAPL" assetCategory="STK" currency="USD" buySell="BUY" quantity="10" tradePrice="190.00" tradeDate="2025-02-03"/>
</Trades>
</TradeConfirmationStatement>`)
	statement, err := NewParser().ParseTradeConfirmation(data)
	require.NoError(t, err)
	require.Equal(t, "U1234567", statement.AccountID)
	require.Len(t, statement.Trades, 1)
	require.Equal(t, "AAPL", statement.Trades[0].Symbol)
	require.Equal(t, "190", statement.Trades[0].TradePrice.String())
	require.Empty(t, statement.WashSales)

	_, err = NewParser().ParseTradeConfirmation([]byte(`<FlexQueryResponse/>`))
	require.ErrorContains(t, err, `unknown root element "FlexQueryResponse"`)
}

func TestDetectStatementType(t *testing.T) {
	t.Parallel()
	statementType, err := DetectStatementType([]byte(`<FlexQueryResponse><FlexStatements/></FlexQueryResponse>`))
	require.NoError(t, err)
	require.Equal(t, StatementTypeActivity, statementType)

	statementType, err = DetectStatementType([]byte(`<?xml version="1.0"?>
<TradeConfirmationStatement accountId="U1234567"/>`))
	require.NoError(t, err)
	require.Equal(t, StatementTypeTradeConfirmation, statementType)

	_, err = DetectStatementType([]byte(`<html/>`))
	require.ErrorContains(t, err, `unknown root element "html"`)

	_, err = DetectStatementType(nil)
	require.Error(t, err)
}
