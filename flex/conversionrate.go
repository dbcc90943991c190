// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"github.com/shopspring/decimal"
)

type rawConversionRate struct {
	ReportDate   string `xml:"reportDate,attr"`
	FromCurrency string `xml:"fromCurrency,attr"`
	ToCurrency   string `xml:"toCurrency,attr"`
	Rate         string `xml:"rate,attr"`
}

// ConversionRate is a daily FX conversion rate from the ConversionRates
// section. All fields are always present.
type ConversionRate struct {
	ReportDate   Date
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
}

func (c *decoder) decodeConversionRate(raw *rawConversionRate) (ConversionRate, error) {
	const element = "ConversionRate"
	var rate ConversionRate
	var err error
	if rate.ReportDate, err = c.date(element, "reportDate", raw.ReportDate); err != nil {
		return ConversionRate{}, err
	}
	if rate.FromCurrency, err = c.required(element, "fromCurrency", raw.FromCurrency); err != nil {
		return ConversionRate{}, err
	}
	if rate.ToCurrency, err = c.required(element, "toCurrency", raw.ToCurrency); err != nil {
		return ConversionRate{}, err
	}
	if rate.Rate, err = c.decimal(element, "rate", raw.Rate); err != nil {
		return ConversionRate{}, err
	}
	return rate, nil
}
