// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import "github.com/shopspring/decimal"

// DerivativeInfo is the structured view of a record's derivative contract
// terms, projected from the flat strike/expiry/putCall/underlying attributes.
//
// Which fields are set depends on the asset category:
//
//   - Options and future options always have Strike, Expiry, PutCall, and
//     UnderlyingSymbol.
//   - Futures always have Expiry and UnderlyingSymbol; Strike and PutCall
//     are never set.
//   - Warrants always have UnderlyingSymbol; Strike and Expiry are set when
//     reported.
type DerivativeInfo struct {
	// Strike is the strike price.
	Strike *decimal.Decimal
	// Expiry is the expiration date.
	Expiry *Date
	// PutCall distinguishes puts from calls. Empty when not applicable.
	PutCall PutCall
	// UnderlyingSymbol is the underlying security's symbol.
	UnderlyingSymbol string
	// UnderlyingConid is the underlying security's contract ID, when reported.
	UnderlyingConid string
}

// derivativeInfo projects flat derivative attributes into a DerivativeInfo.
//
// It returns false for non-derivative asset categories and for derivative
// records missing any of the category's required fields, so a returned
// DerivativeInfo is never partially populated.
func derivativeInfo(
	assetCategory AssetCategory,
	strike *decimal.Decimal,
	expiry *Date,
	putCall PutCall,
	underlyingSymbol string,
	underlyingConid string,
) (DerivativeInfo, bool) {
	switch assetCategory {
	case AssetCategoryOption, AssetCategoryFutureOption:
		if strike == nil || expiry == nil || putCall == "" || underlyingSymbol == "" {
			return DerivativeInfo{}, false
		}
		return DerivativeInfo{
			Strike:           strike,
			Expiry:           expiry,
			PutCall:          putCall,
			UnderlyingSymbol: underlyingSymbol,
			UnderlyingConid:  underlyingConid,
		}, true
	case AssetCategoryFuture:
		if expiry == nil || underlyingSymbol == "" {
			return DerivativeInfo{}, false
		}
		return DerivativeInfo{
			Expiry:           expiry,
			UnderlyingSymbol: underlyingSymbol,
			UnderlyingConid:  underlyingConid,
		}, true
	case AssetCategoryWarrant:
		if underlyingSymbol == "" {
			return DerivativeInfo{}, false
		}
		return DerivativeInfo{
			Strike:           strike,
			Expiry:           expiry,
			UnderlyingSymbol: underlyingSymbol,
			UnderlyingConid:  underlyingConid,
		}, true
	default:
		return DerivativeInfo{}, false
	}
}
