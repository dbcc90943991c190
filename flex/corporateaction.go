// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawCorporateAction struct {
	AccountID        string `xml:"accountId,attr"`
	TransactionID    string `xml:"transactionID,attr"`
	ActionID         string `xml:"actionID,attr"`
	Type             string `xml:"type,attr"`
	Description      string `xml:"description,attr"`
	Date             string `xml:"date,attr"`
	DateTime         string `xml:"dateTime,attr"`
	ReportDate       string `xml:"reportDate,attr"`
	ExDate           string `xml:"exDate,attr"`
	PayDate          string `xml:"payDate,attr"`
	RecordDate       string `xml:"recordDate,attr"`
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
	Quantity         string `xml:"quantity,attr"`
	Amount           string `xml:"amount,attr"`
	Proceeds         string `xml:"proceeds,attr"`
	Value            string `xml:"value,attr"`
	Cost             string `xml:"cost,attr"`
	FifoPnlRealized  string `xml:"fifoPnlRealized,attr"`
	MtmPnl           string `xml:"mtmPnl,attr"`
	Currency         string `xml:"currency,attr"`
	FxRateToBase     string `xml:"fxRateToBase,attr"`
	Code             string `xml:"code,attr"`
	Issuer           string `xml:"issuer,attr"`
	ListingExchange  string `xml:"listingExchange,attr"`
	LevelOfDetail    string `xml:"levelOfDetail,attr"`
	Model            string `xml:"model,attr"`
	AccountAlias     string `xml:"acctAlias,attr"`
}

// CorporateAction is a corporate event from the CorporateActions section:
// splits, mergers, spinoffs, symbol changes, tenders, and the like.
//
// AccountID, Conid, Symbol, and ReportDate are always present.
type CorporateAction struct {
	AccountID        string
	TransactionID    string
	ActionID         string
	Type             CorporateActionType
	Description      string
	Date             *Date
	DateTime         string
	ReportDate       Date
	ExDate           *Date
	PayDate          *Date
	RecordDate       *Date
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
	Quantity         *decimal.Decimal
	Amount           *decimal.Decimal
	Proceeds         *decimal.Decimal
	Value            *decimal.Decimal
	Cost             *decimal.Decimal
	FifoPnlRealized  *decimal.Decimal
	MtmPnl           *decimal.Decimal
	Currency         string
	FxRateToBase     *decimal.Decimal
	Code             string
	Issuer           string
	ListingExchange  string
	LevelOfDetail    LevelOfDetail
	Model            string
	AccountAlias     string
}

func (c *decoder) decodeCorporateAction(raw *rawCorporateAction) (CorporateAction, error) {
	const element = "CorporateAction"
	var action CorporateAction
	var err error
	if action.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return CorporateAction{}, err
	}
	if action.Conid, err = c.required(element, "conid", raw.Conid); err != nil {
		return CorporateAction{}, err
	}
	if action.Symbol, err = c.required(element, "symbol", raw.Symbol); err != nil {
		return CorporateAction{}, err
	}
	if action.ReportDate, err = c.date(element, "reportDate", raw.ReportDate); err != nil {
		return CorporateAction{}, err
	}
	action.TransactionID = raw.TransactionID
	action.ActionID = raw.ActionID
	action.Type = c.optionalCorporateActionType(element, "type", raw.Type)
	action.Description = raw.Description
	if action.Date, err = c.optionalDate(element, "date", raw.Date); err != nil {
		return CorporateAction{}, err
	}
	action.DateTime = raw.DateTime
	if action.ExDate, err = c.optionalDate(element, "exDate", raw.ExDate); err != nil {
		return CorporateAction{}, err
	}
	if action.PayDate, err = c.optionalDate(element, "payDate", raw.PayDate); err != nil {
		return CorporateAction{}, err
	}
	if action.RecordDate, err = c.optionalDate(element, "recordDate", raw.RecordDate); err != nil {
		return CorporateAction{}, err
	}
	if raw.AssetCategory != "" {
		action.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	}
	action.SubCategory = c.optionalSubCategory(element, "subCategory", raw.SubCategory)
	action.CUSIP = raw.CUSIP
	action.ISIN = raw.ISIN
	action.FIGI = raw.FIGI
	action.SecurityID = raw.SecurityID
	action.SecurityIDType = c.optionalSecurityIDType(element, "securityIDType", raw.SecurityIDType)
	if action.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return CorporateAction{}, err
	}
	if action.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return CorporateAction{}, err
	}
	if action.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return CorporateAction{}, err
	}
	action.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	action.UnderlyingConid = raw.UnderlyingConid
	action.UnderlyingSymbol = raw.UnderlyingSymbol
	if action.Quantity, err = c.optionalDecimal(element, "quantity", raw.Quantity); err != nil {
		return CorporateAction{}, err
	}
	if action.Amount, err = c.optionalDecimal(element, "amount", raw.Amount); err != nil {
		return CorporateAction{}, err
	}
	if action.Proceeds, err = c.optionalDecimal(element, "proceeds", raw.Proceeds); err != nil {
		return CorporateAction{}, err
	}
	if action.Value, err = c.optionalDecimal(element, "value", raw.Value); err != nil {
		return CorporateAction{}, err
	}
	if action.Cost, err = c.optionalDecimal(element, "cost", raw.Cost); err != nil {
		return CorporateAction{}, err
	}
	if action.FifoPnlRealized, err = c.optionalDecimal(element, "fifoPnlRealized", raw.FifoPnlRealized); err != nil {
		return CorporateAction{}, err
	}
	if action.MtmPnl, err = c.optionalDecimal(element, "mtmPnl", raw.MtmPnl); err != nil {
		return CorporateAction{}, err
	}
	action.Currency = raw.Currency
	if action.FxRateToBase, err = c.optionalDecimal(element, "fxRateToBase", raw.FxRateToBase); err != nil {
		return CorporateAction{}, err
	}
	action.Code = raw.Code
	action.Issuer = raw.Issuer
	action.ListingExchange = raw.ListingExchange
	action.LevelOfDetail = c.optionalLevelOfDetail(element, "levelOfDetail", raw.LevelOfDetail)
	action.Model = raw.Model
	action.AccountAlias = raw.AccountAlias
	return action, nil
}
