// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawSecurityInfo struct {
	AssetCategory         string `xml:"assetCategory,attr"`
	SubCategory           string `xml:"subCategory,attr"`
	Symbol                string `xml:"symbol,attr"`
	Description           string `xml:"description,attr"`
	Conid                 string `xml:"conid,attr"`
	SecurityID            string `xml:"securityID,attr"`
	SecurityIDType        string `xml:"securityIDType,attr"`
	CUSIP                 string `xml:"cusip,attr"`
	ISIN                  string `xml:"isin,attr"`
	FIGI                  string `xml:"figi,attr"`
	SEDOL                 string `xml:"sedol,attr"`
	Multiplier            string `xml:"multiplier,attr"`
	Strike                string `xml:"strike,attr"`
	Expiry                string `xml:"expiry,attr"`
	PutCall               string `xml:"putCall,attr"`
	UnderlyingConid       string `xml:"underlyingConid,attr"`
	UnderlyingSymbol      string `xml:"underlyingSymbol,attr"`
	Maturity              string `xml:"maturity,attr"`
	PrincipalAdjustFactor string `xml:"principalAdjustFactor,attr"`
	Currency              string `xml:"currency,attr"`
	ListingExchange       string `xml:"listingExchange,attr"`
	Issuer                string `xml:"issuer,attr"`
	IssuerCountryCode     string `xml:"issuerCountryCode,attr"`
	DeliveryMonth         string `xml:"deliveryMonth,attr"`
	Code                  string `xml:"code,attr"`
}

// SecurityInfo is security reference data from the SecuritiesInfo section.
//
// AssetCategory, Symbol, and Conid are always present.
type SecurityInfo struct {
	AssetCategory         AssetCategory
	SubCategory           SubCategory
	Symbol                string
	Description           string
	Conid                 string
	SecurityID            string
	SecurityIDType        SecurityIDType
	CUSIP                 string
	ISIN                  string
	FIGI                  string
	SEDOL                 string
	Multiplier            *decimal.Decimal
	Strike                *decimal.Decimal
	Expiry                *Date
	PutCall               PutCall
	UnderlyingConid       string
	UnderlyingSymbol      string
	Maturity              *Date
	PrincipalAdjustFactor *decimal.Decimal
	Currency              string
	ListingExchange       string
	Issuer                string
	IssuerCountryCode     string
	DeliveryMonth         string
	Code                  string
}

func (c *decoder) decodeSecurityInfo(raw *rawSecurityInfo) (SecurityInfo, error) {
	const element = "SecurityInfo"
	var info SecurityInfo
	var err error
	if _, err = c.required(element, "assetCategory", raw.AssetCategory); err != nil {
		return SecurityInfo{}, err
	}
	if info.Symbol, err = c.required(element, "symbol", raw.Symbol); err != nil {
		return SecurityInfo{}, err
	}
	if info.Conid, err = c.required(element, "conid", raw.Conid); err != nil {
		return SecurityInfo{}, err
	}
	info.AssetCategory = c.assetCategory(element, "assetCategory", raw.AssetCategory)
	info.SubCategory = c.optionalSubCategory(element, "subCategory", raw.SubCategory)
	info.Description = raw.Description
	info.SecurityID = raw.SecurityID
	info.SecurityIDType = c.optionalSecurityIDType(element, "securityIDType", raw.SecurityIDType)
	info.CUSIP = raw.CUSIP
	info.ISIN = raw.ISIN
	info.FIGI = raw.FIGI
	info.SEDOL = raw.SEDOL
	if info.Multiplier, err = c.optionalDecimal(element, "multiplier", raw.Multiplier); err != nil {
		return SecurityInfo{}, err
	}
	if info.Strike, err = c.optionalDecimal(element, "strike", raw.Strike); err != nil {
		return SecurityInfo{}, err
	}
	if info.Expiry, err = c.optionalDate(element, "expiry", raw.Expiry); err != nil {
		return SecurityInfo{}, err
	}
	info.PutCall = c.optionalPutCall(element, "putCall", raw.PutCall)
	info.UnderlyingConid = raw.UnderlyingConid
	info.UnderlyingSymbol = raw.UnderlyingSymbol
	if info.Maturity, err = c.optionalDate(element, "maturity", raw.Maturity); err != nil {
		return SecurityInfo{}, err
	}
	if info.PrincipalAdjustFactor, err = c.optionalDecimal(element, "principalAdjustFactor", raw.PrincipalAdjustFactor); err != nil {
		return SecurityInfo{}, err
	}
	info.Currency = raw.Currency
	info.ListingExchange = raw.ListingExchange
	info.Issuer = raw.Issuer
	info.IssuerCountryCode = raw.IssuerCountryCode
	info.DeliveryMonth = raw.DeliveryMonth
	info.Code = raw.Code
	return info, nil
}
