// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawCashTransaction struct {
	AccountID        string `xml:"accountId,attr"`
	TransactionID    string `xml:"transactionID,attr"`
	Type             string `xml:"type,attr"`
	Description      string `xml:"description,attr"`
	Amount           string `xml:"amount,attr"`
	Currency         string `xml:"currency,attr"`
	FxRateToBase     string `xml:"fxRateToBase,attr"`
	Date             string `xml:"date,attr"`
	DateTime         string `xml:"dateTime,attr"`
	SettleDate       string `xml:"settleDate,attr"`
	ExDate           string `xml:"exDate,attr"`
	ReportDate       string `xml:"reportDate,attr"`
	Conid            string `xml:"conid,attr"`
	Symbol           string `xml:"symbol,attr"`
	AssetCategory    string `xml:"assetCategory,attr"`
	SubCategory      string `xml:"subCategory,attr"`
	CUSIP            string `xml:"cusip,attr"`
	ISIN             string `xml:"isin,attr"`
	FIGI             string `xml:"figi,attr"`
	SecurityID       string `xml:"securityID,attr"`
	SecurityIDType   string `xml:"securityIDType,attr"`
	Multiplier       string `xml:"multiplier,attr"`
	Strike           string `xml:"strike,attr"`
	Expiry           string `xml:"expiry,attr"`
	PutCall          string `xml:"putCall,attr"`
	UnderlyingConid  string `xml:"underlyingConid,attr"`
	UnderlyingSymbol string `xml:"underlyingSymbol,attr"`
	Code             string `xml:"code,attr"`
	ActionID         string `xml:"actionID,attr"`
	TradeID          string `xml:"tradeID,attr"`
	ClientReference  string `xml:"clientReference,attr"`
	Issuer           string `xml:"issuer,attr"`
	ListingExchange  string `xml:"listingExchange,attr"`
	LevelOfDetail    string `xml:"levelOfDetail,attr"`
	Model            string `xml:"model,attr"`
	AccountAlias     string `xml:"acctAlias,attr"`
}

// CashTransaction is a cash movement from the CashTransactions section:
// deposits, withdrawals, dividends, interest, withholding tax, and fees.
//
// AccountID, Amount, and Currency are always present. Amount is positive for
// credits and negative for debits. Security fields are set only for
// security-linked movements such as dividends.
type CashTransaction struct {
	AccountID        string
	TransactionID    string
	Type             CashTransactionType
	Description      string
	Amount           decimal.Decimal
	Currency         string
	FxRateToBase     *decimal.Decimal
	Date             *Date
	DateTime         string
	SettleDate       *Date
	ExDate           *Date
	ReportDate       *Date
	Conid            string
	Symbol           string
	AssetCategory    AssetCategory
	SubCategory      SubCategory
	CUSIP            string
	ISIN             string
	FIGI             string
	SecurityID       string
	SecurityIDType   SecurityIDType
	Multiplier       *decimal.Decimal
	Strike           *decimal.Decimal
	Expiry           *Date
	PutCall          PutCall
	UnderlyingConid  string
	UnderlyingSymbol string
	Code             string
	ActionID         string
	TradeID          string
	ClientReference  string
	Issuer           string
	ListingExchange  string
	LevelOfDetail    LevelOfDetail
	Model            string
	AccountAlias     string
}

func (c *decoder) decodeCashTransaction(raw *rawCashTransaction) (CashTransaction, error) {
	const element = "CashTransaction"
	var transaction CashTransaction
	var err error
	if transaction.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return CashTransaction{}, err
	}
	if transaction.Amount, err = c.decimal(element, "amount", raw.Amount); err != nil {
		return CashTransaction{}, err
	}
	if transaction.Currency, err = c.required(element, "currency", raw.Currency); err != nil {
		return CashTransaction{}, err
	}
	transaction.TransactionID = raw.TransactionID
	transaction.Type = c.optionalCashTransactionType(element, "type", raw.Type)
	transaction.Description = raw.Description
	if transaction.FxRateToBase, err = c.optionalDecimal(element, "fxRateToBase", raw.FxRateToBase); err != nil {
		return CashTransaction{}, err
	}
	if transaction.Date, err = c.optionalDate(element, "date", raw.Date); err != nil {
		return CashTransaction{}, err
	}
	transaction.DateTime = raw.DateTime
	if transaction.SettleDate, err = c.optionalDate(element, "settleDate", raw.SettleDate); err != nil {
		return CashTransaction{}, err
	}
	if transaction.ExDate, err = c.optionalDate(element, "exDate", raw.ExDate); err != nil {
		return CashTransaction{}, err
	}
	if transaction.ReportDate, err = c.optionalDate(element, "reportDate", raw.ReportDate); err != nil {
		return CashTransaction{}, err
	}
	transaction.Conid = raw.Conid
	transaction.Symbol = raw.Symbol
	if raw.AssetCategory != "" {
		transaction.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	}
	transaction.SubCategory = c.optionalSubCategory(element, "subCategory", raw.SubCategory)
	transaction.CUSIP = raw.CUSIP
	transaction.ISIN = raw.ISIN
	transaction.FIGI = raw.FIGI
	transaction.SecurityID = raw.SecurityID
	transaction.SecurityIDType = c.optionalSecurityIDType(element, "securityIDType", raw.SecurityIDType)
	if transaction.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return CashTransaction{}, err
	}
	if transaction.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return CashTransaction{}, err
	}
	if transaction.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return CashTransaction{}, err
	}
	transaction.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	transaction.UnderlyingConid = raw.UnderlyingConid
	transaction.UnderlyingSymbol = raw.UnderlyingSymbol
	transaction.Code = raw.Code
	transaction.ActionID = raw.ActionID
	transaction.TradeID = raw.TradeID
	transaction.ClientReference = raw.ClientReference
	transaction.Issuer = raw.Issuer
	transaction.ListingExchange = raw.ListingExchange
	transaction.LevelOfDetail = c.optionalLevelOfDetail(element, "levelOfDetail", raw.LevelOfDetail)
	transaction.Model = raw.Model
	transaction.AccountAlias = raw.AccountAlias
	return transaction, nil
}
