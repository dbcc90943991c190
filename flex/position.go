// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawPosition struct {
	AccountID                string `xml:"accountId,attr"`
	Conid                    string `xml:"conid,attr"`
	Symbol                   string `xml:"symbol,attr"`
	Description              string `xml:"description,attr"`
	AssetCategory            string `xml:"assetCategory,attr"`
	SubCategory              string `xml:"subCategory,attr"`
	CUSIP                    string `xml:"cusip,attr"`
	ISIN                     string `xml:"isin,attr"`
	FIGI                     string `xml:"figi,attr"`
	SecurityID               string `xml:"securityID,attr"`
	SecurityIDType           string `xml:"securityIDType,attr"`
	Multiplier               string `xml:"multiplier,attr"`
	Strike                   string `xml:"strike,attr"`
	Expiry                   string `xml:"expiry,attr"`
	PutCall                  string `xml:"putCall,attr"`
	UnderlyingConid          string `xml:"underlyingConid,attr"`
	UnderlyingSymbol         string `xml:"underlyingSymbol,attr"`
	Position                 string `xml:"position,attr"`
	MarkPrice                string `xml:"markPrice,attr"`
	PositionValue            string `xml:"positionValue,attr"`
	Side                     string `xml:"side,attr"`
	OpenPrice                string `xml:"openPrice,attr"`
	CostBasisPrice           string `xml:"costBasisPrice,attr"`
	CostBasisMoney           string `xml:"costBasisMoney,attr"`
	FifoPnlUnrealized        string `xml:"fifoPnlUnrealized,attr"`
	PercentOfNAV             string `xml:"percentOfNAV,attr"`
	Currency                 string `xml:"currency,attr"`
	FxRateToBase             string `xml:"fxRateToBase,attr"`
	ReportDate               string `xml:"reportDate,attr"`
	HoldingPeriodDateTime    string `xml:"holdingPeriodDateTime,attr"`
	OpenDateTime             string `xml:"openDateTime,attr"`
	OriginatingTransactionID string `xml:"originatingTransactionID,attr"`
	OriginatingOrderID       string `xml:"originatingOrderID,attr"`
	Code                     string `xml:"code,attr"`
	Issuer                   string `xml:"issuer,attr"`
	IssuerCountryCode        string `xml:"issuerCountryCode,attr"`
	ListingExchange          string `xml:"listingExchange,attr"`
	AccruedInterest          string `xml:"accruedInt,attr"`
	PrincipalAdjustFactor    string `xml:"principalAdjustFactor,attr"`
	LevelOfDetail            string `xml:"levelOfDetail,attr"`
	Model                    string `xml:"model,attr"`
	AccountAlias             string `xml:"acctAlias,attr"`
	VestingDate              string `xml:"vestingDate,attr"`
}

// Position is an open position snapshot from the OpenPositions section.
//
// Quantity is negative for short positions. Quantity, MarkPrice,
// PositionValue, and ReportDate are always present.
type Position struct {
	AccountID                string
	Conid                    string
	Symbol                   string
	Description              string
	AssetCategory            AssetCategory
	SubCategory              SubCategory
	CUSIP                    string
	ISIN                     string
	FIGI                     string
	SecurityID               string
	SecurityIDType           SecurityIDType
	Multiplier               *decimal.Decimal
	Strike                   *decimal.Decimal
	Expiry                   *Date
	PutCall                  PutCall
	UnderlyingConid          string
	UnderlyingSymbol         string
	Quantity                 decimal.Decimal
	MarkPrice                decimal.Decimal
	PositionValue            decimal.Decimal
	Side                     LongShort
	OpenPrice                *decimal.Decimal
	CostBasisPrice           *decimal.Decimal
	CostBasisMoney           *decimal.Decimal
	FifoPnlUnrealized        *decimal.Decimal
	PercentOfNAV             *decimal.Decimal
	Currency                 string
	FxRateToBase             *decimal.Decimal
	ReportDate               Date
	HoldingPeriodDateTime    string
	OpenDateTime             string
	OriginatingTransactionID string
	OriginatingOrderID       string
	Code                     string
	Issuer                   string
	IssuerCountryCode        string
	ListingExchange          string
	AccruedInterest          *decimal.Decimal
	PrincipalAdjustFactor    *decimal.Decimal
	LevelOfDetail            LevelOfDetail
	Model                    string
	AccountAlias             string
	VestingDate              *Date
}

// Derivative projects the position's flat derivative attributes into a
// DerivativeInfo, under the same rules as Trade.Derivative.
func (p *Position) Derivative() (DerivativeInfo, bool) {
	return derivativeInfo(
		p.AssetCategory,
		p.Strike,
		p.Expiry,
		p.PutCall,
		p.UnderlyingSymbol,
		p.UnderlyingConid,
	)
}

func (c *decoder) decodePosition(raw *rawPosition) (Position, error) {
	const element = "OpenPosition"
	var position Position
	var err error
	if position.AccountID, err = c.required(element, "accountId", raw.AccountID); err != nil {
		return Position{}, err
	}
	if position.Conid, err = c.required(element, "conid", raw.Conid); err != nil {
		return Position{}, err
	}
	if position.Symbol, err = c.required(element, "symbol", raw.Symbol); err != nil {
		return Position{}, err
	}
	if _, err = c.required(element, "assetCategory", raw.AssetCategory); err != nil {
		return Position{}, err
	}
	if position.Currency, err = c.required(element, "currency", raw.Currency); err != nil {
		return Position{}, err
	}
	position.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	if position.Quantity, err = c.decimal(element, "position", raw.Position); err != nil {
		return Position{}, err
	}
	if position.MarkPrice, err = c.decimal(element, "markPrice", raw.MarkPrice); err != nil {
		return Position{}, err
	}
	if position.PositionValue, err = c.decimal(element, "positionValue", raw.PositionValue); err != nil {
		return Position{}, err
	}
	if position.ReportDate, err = c.date(element, "reportDate", raw.ReportDate); err != nil {
		return Position{}, err
	}
	position.Description = raw.Description
	position.SubCategory = c.optionalSubCategory(element, "subCategory", raw.SubCategory)
	position.CUSIP = raw.CUSIP
	position.ISIN = raw.ISIN
	position.FIGI = raw.FIGI
	position.SecurityID = raw.SecurityID
	position.SecurityIDType = c.optionalSecurityIDType(element, "securityIDType", raw.SecurityIDType)
	if position.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return Position{}, err
	}
	if position.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return Position{}, err
	}
	if position.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return Position{}, err
	}
	position.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	position.UnderlyingConid = raw.UnderlyingConid
	position.UnderlyingSymbol = raw.UnderlyingSymbol
	position.Side = c.optionalLongShort(element, "side", raw.Side)
	if position.OpenPrice, err = c.optionalDecimal(element, "openPrice", raw.OpenPrice); err != nil {
		return Position{}, err
	}
	if position.CostBasisPrice, err = c.optionalDecimal(element, "costBasisPrice", raw.CostBasisPrice); err != nil {
		return Position{}, err
	}
	if position.CostBasisMoney, err = c.optionalDecimal(element, "costBasisMoney", raw.CostBasisMoney); err != nil {
		return Position{}, err
	}
	if position.FifoPnlUnrealized, err = c.optionalDecimal(element, "fifoPnlUnrealized", raw.FifoPnlUnrealized); err != nil {
		return Position{}, err
	}
	if position.PercentOfNAV, err = c.optionalDecimal(element, "percentOfNAV", raw.PercentOfNAV); err != nil {
		return Position{}, err
	}
	if position.FxRateToBase, err = c.optionalDecimal(element, "fxRateToBase", raw.FxRateToBase); err != nil {
		return Position{}, err
	}
	position.HoldingPeriodDateTime = raw.HoldingPeriodDateTime
	position.OpenDateTime = raw.OpenDateTime
	position.OriginatingTransactionID = raw.OriginatingTransactionID
	position.OriginatingOrderID = raw.OriginatingOrderID
	position.Code = raw.Code
	position.Issuer = raw.Issuer
	position.IssuerCountryCode = raw.IssuerCountryCode
	position.ListingExchange = raw.ListingExchange
	if position.AccruedInterest, err = c.optionalDecimal(element, "accruedInt", raw.AccruedInterest); err != nil {
		return Position{}, err
	}
	if position.PrincipalAdjustFactor, err = c.optionalDecimal(element, "principalAdjustFactor", raw.PrincipalAdjustFactor); err != nil {
		return Position{}, err
	}
	position.LevelOfDetail = c.optionalLevelOfDetail(element, "levelOfDetail", raw.LevelOfDetail)
	position.Model = raw.Model
	position.AccountAlias = raw.AccountAlias
	if position.VestingDate, err = c.optionalDate(element, "vestingDate", raw.VestingDate); err != nil {
		return Position{}, err
	}
	return position, nil
}
