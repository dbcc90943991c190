// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawOptionExercise struct {
	AccountID        string `xml:"accountId,attr"`
	AccountAlias     string `xml:"acctAlias,attr"`
	Model            string `xml:"model,attr"`
	TransactionID    string `xml:"transactionID,attr"`
	ActionID         string `xml:"actionID,attr"`
	Type             string `xml:"type,attr"`
	Date             string `xml:"date,attr"`
	DateTime         string `xml:"dateTime,attr"`
	Conid            string `xml:"conid,attr"`
	Symbol           string `xml:"symbol,attr"`
	Description      string `xml:"description,attr"`
	AssetCategory    string `xml:"assetCategory,attr"`
	CUSIP            string `xml:"cusip,attr"`
	ISIN             string `xml:"isin,attr"`
	FIGI             string `xml:"figi,attr"`
	ListingExchange  string `xml:"listingExchange,attr"`
	Quantity         string `xml:"quantity,attr"`
	Strike           string `xml:"strike,attr"`
	Expiry           string `xml:"expiry,attr"`
	PutCall          string `xml:"putCall,attr"`
	Multiplier       string `xml:"multiplier,attr"`
	UnderlyingSymbol string `xml:"underlyingSymbol,attr"`
	UnderlyingConid  string `xml:"underlyingConid,attr"`
	TradePrice       string `xml:"tradePrice,attr"`
	Proceeds         string `xml:"proceeds,attr"`
	Commission       string `xml:"commission,attr"`
	Currency         string `xml:"currency,attr"`
	FxRateToBase     string `xml:"fxRateToBase,attr"`
	FifoPnlRealized  string `xml:"fifoPnlRealized,attr"`
	Notes            string `xml:"notes,attr"`
	LevelOfDetail    string `xml:"levelOfDetail,attr"`
}

// OptionExercise is an option lifecycle event from the OptionEAE section:
// an exercise, assignment, expiration, or cash settlement.
//
// AccountID, Symbol, Quantity, and Date are always present.
type OptionExercise struct {
	AccountID        string
	AccountAlias     string
	Model            string
	TransactionID    string
	ActionID         string
	Type             OptionAction
	Date             Date
	DateTime         string
	Conid            string
	Symbol           string
	Description      string
	AssetCategory    AssetCategory
	CUSIP            string
	ISIN             string
	FIGI             string
	ListingExchange  string
	Quantity         decimal.Decimal
	Strike           *decimal.Decimal
	Expiry           *Date
	PutCall          PutCall
	Multiplier       *decimal.Decimal
	UnderlyingSymbol string
	UnderlyingConid  string
	TradePrice       *decimal.Decimal
	Proceeds         *decimal.Decimal
	Commission       *decimal.Decimal
	Currency         string
	FxRateToBase     *decimal.Decimal
	FifoPnlRealized  *decimal.Decimal
	Notes            []TransactionCode
	LevelOfDetail    LevelOfDetail
}

func (c *decoder) decodeOptionExercise(raw *rawOptionExercise) (OptionExercise, error) {
	const element = "OptionEAE"
	var exercise OptionExercise
	var err error
	if exercise.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return OptionExercise{}, err
	}
	if exercise.Symbol, err = c.required(element, "symbol", raw.Symbol); err != nil {
		return OptionExercise{}, err
	}
	if exercise.Quantity, err = c.decimal(element, "quantity", raw.Quantity); err != nil {
		return OptionExercise{}, err
	}
	if exercise.Date, err = c.date(element, "date", raw.Date); err != nil {
		return OptionExercise{}, err
	}
	exercise.AccountAlias = raw.AccountAlias
	exercise.Model = raw.Model
	exercise.TransactionID = raw.TransactionID
	exercise.ActionID = raw.ActionID
	exercise.Type = c.optionalOptionAction(element, "type", raw.Type)
	exercise.DateTime = raw.DateTime
	exercise.Conid = raw.Conid
	exercise.Description = raw.Description
	if raw.AssetCategory != "" {
		exercise.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	}
	exercise.CUSIP = raw.CUSIP
	exercise.ISIN = raw.ISIN
	exercise.FIGI = raw.FIGI
	exercise.ListingExchange = raw.ListingExchange
	if exercise.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return OptionExercise{}, err
	}
	if exercise.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return OptionExercise{}, err
	}
	exercise.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	if exercise.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return OptionExercise{}, err
	}
	exercise.UnderlyingSymbol = raw.UnderlyingSymbol
	exercise.UnderlyingConid = raw.UnderlyingConid
	if exercise.TradePrice, err = c.optionalDecimal(element, "tradePrice", raw.TradePrice); err != nil {
		return OptionExercise{}, err
	}
	if exercise.Proceeds, err = c.optionalDecimal(element, "proceeds", raw.Proceeds); err != nil {
		return OptionExercise{}, err
	}
	if exercise.Commission, err = c.optionalDecimal(element, "commission", raw.Commission); err != nil {
		return OptionExercise{}, err
	}
	exercise.Currency = raw.Currency
	if exercise.FxRateToBase, err = c.optionalDecimal(element, "fxRateToBase", raw.FxRateToBase); err != nil {
		return OptionExercise{}, err
	}
	if exercise.FifoPnlRealized, err = c.optionalDecimal(element, "fifoPnlRealized", raw.FifoPnlRealized); err != nil {
		return OptionExercise{}, err
	}
	exercise.Notes = c.codes(element, "notes", raw.Notes)
	exercise.LevelOfDetail = c.optionalLevelOfDetail(element, "levelOfDetail", raw.LevelOfDetail)
	return exercise, nil
}
