// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"encoding/xml"
)

// rawTradesSection collects the children of a <Trades> section.
//
// The section interleaves element kinds by symbol rather than grouping them
// by kind: <Trade> executions, <WashSale> adjustments, and <Order>,
// <SymbolSummary>, <AssetSummary>, and <Lot> aggregate rows can appear in
// any order. Only Trade and WashSale carry per-execution data, so the rest
// are consumed and discarded; unknown child tags are skipped the same way.
// Wire order is preserved within each bucket.
type rawTradesSection struct {
	Trades    []rawTrade
	WashSales []rawTrade
}

func (s *rawTradesSection) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Trade":
				var raw rawTrade
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				s.Trades = append(s.Trades, raw)
			case "WashSale":
				var raw rawTrade
				if err := d.DecodeElement(&raw, &t); err != nil {
					return err
				}
				s.WashSales = append(s.WashSales, raw)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (c *decoder) decodeTradesSection(raw *rawTradesSection) ([]Trade, []Trade, error) {
	var trades []Trade
	for i := range raw.Trades {
		trade, err := c.decodeTrade("Trade", &raw.Trades[i])
		if err != nil {
			return nil, nil, err
		}
		trades = append(trades, trade)
	}
	var washSales []Trade
	for i := range raw.WashSales {
		washSale, err := c.decodeTrade("WashSale", &raw.WashSales[i])
		if err != nil {
			return nil, nil, err
		}
		washSales = append(washSales, washSale)
	}
	return trades, washSales, nil
}
