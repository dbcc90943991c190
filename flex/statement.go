// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"fmt"
)

// rawFlexQueryResponse mirrors the FlexQueryResponse document: query
// metadata wrapping one or more FlexStatement elements. Sections not listed
// on rawStatement (extension sections like EquitySummaryInBase, CashReport,
// StmtFunds, and anything newer) have no matching field and are skipped by
// the XML decoder without desynchronizing the parse.
type rawFlexQueryResponse struct {
	QueryName      string            `xml:"queryName,attr"`
	QueryType      string            `xml:"type,attr"`
	FlexStatements rawFlexStatements `xml:"FlexStatements"`
}

type rawFlexStatements struct {
	Count      string         `xml:"count,attr"`
	Statements []rawStatement `xml:"FlexStatement"`
}

type rawStatement struct {
	AccountID        string                     `xml:"accountId,attr"`
	FromDate         string                     `xml:"fromDate,attr"`
	ToDate           string                     `xml:"toDate,attr"`
	WhenGenerated    string                     `xml:"whenGenerated,attr"`
	Trades           rawTradesSection           `xml:"Trades"`
	OpenPositions    rawPositionsSection        `xml:"OpenPositions"`
	CashTransactions rawCashTransactionsSection `xml:"CashTransactions"`
	CorporateActions rawCorporateActionsSection `xml:"CorporateActions"`
	SecuritiesInfo   rawSecuritiesInfoSection   `xml:"SecuritiesInfo"`
	ConversionRates  rawConversionRatesSection  `xml:"ConversionRates"`
	Transfers        rawTransfersSection        `xml:"Transfers"`
	OptionEAE        rawOptionEAESection        `xml:"OptionEAE"`
}

type rawPositionsSection struct {
	Items []rawPosition `xml:"OpenPosition"`
}

type rawCashTransactionsSection struct {
	Items []rawCashTransaction `xml:"CashTransaction"`
}

type rawCorporateActionsSection struct {
	Items []rawCorporateAction `xml:"CorporateAction"`
}

type rawSecuritiesInfoSection struct {
	Items []rawSecurityInfo `xml:"SecurityInfo"`
}

type rawConversionRatesSection struct {
	Items []rawConversionRate `xml:"ConversionRate"`
}

type rawTransfersSection struct {
	Items []rawTransfer `xml:"Transfer"`
}

type rawOptionEAESection struct {
	Items []rawOptionExercise `xml:"OptionEAE"`
}

type rawTradeConfirmation struct {
	AccountID string           `xml:"accountId,attr"`
	Trades    rawTradesSection `xml:"Trades"`
}

// ActivityStatement is one decoded FlexStatement from an activity
// FlexQueryResponse document.
//
// An absent section and an empty section decode identically: the
// corresponding slice is empty. FromDate never follows ToDate.
type ActivityStatement struct {
	// AccountID is the IB account number.
	AccountID string
	// FromDate is the start of the reporting period.
	FromDate Date
	// ToDate is the end of the reporting period.
	ToDate Date
	// WhenGenerated is the report generation timestamp, kept verbatim.
	// The vendor format (YYYY-MM-DD;HHMMSS) varies with account settings,
	// so it is not parsed.
	WhenGenerated string
	// Trades are the trade executions from the Trades section.
	Trades []Trade
	// WashSales are the wash-sale adjustment records from the Trades section.
	WashSales []Trade
	// OpenPositions are the positions open at the end of the period.
	OpenPositions []Position
	// CashTransactions are deposits, withdrawals, dividends, interest, and fees.
	CashTransactions []CashTransaction
	// CorporateActions are splits, mergers, spinoffs, and other corporate events.
	CorporateActions []CorporateAction
	// SecuritiesInfo is reference data for securities in the statement.
	SecuritiesInfo []SecurityInfo
	// ConversionRates are daily FX rates to the account's base currency.
	ConversionRates []ConversionRate
	// Transfers are position transfers (ACATS, ATON, internal).
	Transfers []Transfer
	// OptionExercises are option exercise, assignment, and expiration events.
	OptionExercises []OptionExercise
}

// TradeConfirmationStatement is a decoded TradeConfirmationStatement
// document: the real-time confirmation shape, carrying only the account and
// its trade executions.
type TradeConfirmationStatement struct {
	// AccountID is the IB account number.
	AccountID string
	// Trades are the confirmed trade executions.
	Trades []Trade
	// WashSales are the wash-sale adjustment records, if any.
	WashSales []Trade
}

func (c *decoder) decodeStatement(raw *rawStatement) (ActivityStatement, error) {
	const element = "FlexStatement"
	var statement ActivityStatement
	var err error
	if statement.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return ActivityStatement{}, err
	}
	if statement.FromDate, err = c.date(element, "fromDate", raw.FromDate); err != nil {
		return ActivityStatement{}, err
	}
	if statement.ToDate, err = c.date(element, "toDate", raw.ToDate); err != nil {
		return ActivityStatement{}, err
	}
	if statement.ToDate.Before(statement.FromDate) {
		return ActivityStatement{}, newDecodeError(
			element,
			"fromDate",
			raw.FromDate,
			fmt.Errorf("fromDate follows toDate %q", raw.ToDate),
		)
	}
	if statement.WhenGenerated, err = c.required(element, "whenGenerated", raw.WhenGenerated); err != nil {
		return ActivityStatement{}, err
	}
	if statement.Trades, statement.WashSales, err = c.decodeTradesSection(&raw.Trades); err != nil {
		return ActivityStatement{}, err
	}
	for i := range raw.OpenPositions.Items {
		position, err := c.decodePosition(&raw.OpenPositions.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.OpenPositions = append(statement.OpenPositions, position)
	}
	for i := range raw.CashTransactions.Items {
		transaction, err := c.decodeCashTransaction(&raw.CashTransactions.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.CashTransactions = append(statement.CashTransactions, transaction)
	}
	for i := range raw.CorporateActions.Items {
		action, err := c.decodeCorporateAction(&raw.CorporateActions.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.CorporateActions = append(statement.CorporateActions, action)
	}
	for i := range raw.SecuritiesInfo.Items {
		info, err := c.decodeSecurityInfo(&raw.SecuritiesInfo.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.SecuritiesInfo = append(statement.SecuritiesInfo, info)
	}
	for i := range raw.ConversionRates.Items {
		rate, err := c.decodeConversionRate(&raw.ConversionRates.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.ConversionRates = append(statement.ConversionRates, rate)
	}
	for i := range raw.Transfers.Items {
		transfer, err := c.decodeTransfer(&raw.Transfers.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.Transfers = append(statement.Transfers, transfer)
	}
	for i := range raw.OptionEAE.Items {
		exercise, err := c.decodeOptionExercise(&raw.OptionEAE.Items[i])
		if err != nil {
			return ActivityStatement{}, err
		}
		statement.OptionExercises = append(statement.OptionExercises, exercise)
	}
	return statement, nil
}

func (c *decoder) decodeTradeConfirmation(raw *rawTradeConfirmation) (TradeConfirmationStatement, error) {
	const element = "TradeConfirmationStatement"
	var statement TradeConfirmationStatement
	var err error
	if statement.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return TradeConfirmationStatement{}, err
	}
	if statement.Trades, statement.WashSales, err = c.decodeTradesSection(&raw.Trades); err != nil {
		return TradeConfirmationStatement{}, err
	}
	return statement, nil
}
