// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawTransfer struct {
	AccountID                 string `xml:"accountId,attr"`
	AccountAlias              string `xml:"acctAlias,attr"`
	Model                     string `xml:"model,attr"`
	TransactionID             string `xml:"transactionID,attr"`
	Type                      string `xml:"type,attr"`
	Conid                     string `xml:"conid,attr"`
	Symbol                    string `xml:"symbol,attr"`
	Description               string `xml:"description,attr"`
	AssetCategory             string `xml:"assetCategory,attr"`
	CUSIP                     string `xml:"cusip,attr"`
	ISIN                      string `xml:"isin,attr"`
	FIGI                      string `xml:"figi,attr"`
	ListingExchange           string `xml:"listingExchange,attr"`
	Quantity                  string `xml:"quantity,attr"`
	TransferPrice             string `xml:"transferPrice,attr"`
	PositionAmount            string `xml:"positionAmount,attr"`
	PositionAmountInBase      string `xml:"positionAmountInBase,attr"`
	CashTransfer              string `xml:"cashTransfer,attr"`
	Currency                  string `xml:"currency,attr"`
	FxRateToBase              string `xml:"fxRateToBase,attr"`
	Direction                 string `xml:"direction,attr"`
	Date                      string `xml:"date,attr"`
	PayerPayeeAccount         string `xml:"ppiPayerPayeeAccount,attr"`
	DeliveringReceivingBroker string `xml:"deliveringReceivingBroker,attr"`
	Strike                    string `xml:"strike,attr"`
	Expiry                    string `xml:"expiry,attr"`
	PutCall                   string `xml:"putCall,attr"`
	Multiplier                string `xml:"multiplier,attr"`
}

// Transfer is a position transfer from the Transfers section (ACATS, ATON,
// internal transfers, and the like).
//
// AccountID, Symbol, Quantity, and Date are always present.
type Transfer struct {
	AccountID                 string
	AccountAlias              string
	Model                     string
	TransactionID             string
	Type                      TransferType
	Conid                     string
	Symbol                    string
	Description               string
	AssetCategory             AssetCategory
	CUSIP                     string
	ISIN                      string
	FIGI                      string
	ListingExchange           string
	Quantity                  decimal.Decimal
	TransferPrice             *decimal.Decimal
	PositionAmount            *decimal.Decimal
	PositionAmountInBase      *decimal.Decimal
	CashTransfer              *decimal.Decimal
	Currency                  string
	FxRateToBase              *decimal.Decimal
	Direction                 string
	Date                      Date
	PayerPayeeAccount         string
	DeliveringReceivingBroker string
	Strike                    *decimal.Decimal
	Expiry                    *Date
	PutCall                   PutCall
	Multiplier                *decimal.Decimal
}

func (c *decoder) decodeTransfer(raw *rawTransfer) (Transfer, error) {
	const element = "Transfer"
	var transfer Transfer
	var err error
	if transfer.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return Transfer{}, err
	}
	if transfer.Symbol, err = c.required(element, "symbol", raw.Symbol); err != nil {
		return Transfer{}, err
	}
	if transfer.Quantity, err = c.decimal(element, "quantity", raw.Quantity); err != nil {
		return Transfer{}, err
	}
	if transfer.Date, err = c.date(element, "date", raw.Date); err != nil {
		return Transfer{}, err
	}
	transfer.AccountAlias = raw.AccountAlias
	transfer.Model = raw.Model
	transfer.TransactionID = raw.TransactionID
	transfer.Type = c.optionalTransferType(element, "type", raw.Type)
	transfer.Conid = raw.Conid
	transfer.Description = raw.Description
	if raw.AssetCategory != "" {
		transfer.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	}
	transfer.CUSIP = raw.CUSIP
	transfer.ISIN = raw.ISIN
	transfer.FIGI = raw.FIGI
	transfer.ListingExchange = raw.ListingExchange
	if transfer.TransferPrice, err = c.optionalDecimal(element, "transferPrice", raw.TransferPrice); err != nil {
		return Transfer{}, err
	}
	if transfer.PositionAmount, err = c.optionalDecimal(element, "positionAmount", raw.PositionAmount); err != nil {
		return Transfer{}, err
	}
	if transfer.PositionAmountInBase, err = c.optionalDecimal(element, "positionAmountInBase", raw.PositionAmountInBase); err != nil {
		return Transfer{}, err
	}
	if transfer.CashTransfer, err = c.optionalDecimal(element, "cashTransfer", raw.CashTransfer); err != nil {
		return Transfer{}, err
	}
	transfer.Currency = raw.Currency
	if transfer.FxRateToBase, err = c.optionalDecimal(element, "fxRateToBase", raw.FxRateToBase); err != nil {
		return Transfer{}, err
	}
	transfer.Direction = raw.Direction
	transfer.PayerPayeeAccount = raw.PayerPayeeAccount
	transfer.DeliveringReceivingBroker = raw.DeliveringReceivingBroker
	if transfer.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return Transfer{}, err
	}
	if transfer.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return Transfer{}, err
	}
	transfer.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	if transfer.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return Transfer{}, err
	}
	return transfer, nil
}
