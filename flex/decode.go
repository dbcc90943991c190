// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeError is a value or structural error tied to a single attribute of
// a statement element. It wraps the underlying parse error.
type DecodeError struct {
	// Element is the XML element name (e.g., "Trade").
	Element string
	// Attr is the attribute name (e.g., "tradeDate").
	Attr string
	// Value is the raw attribute value that failed to decode. Empty for
	// missing mandatory attributes.
	Value string
	err   error
}

func (d *DecodeError) Error() string {
	if d.Value == "" {
		return fmt.Sprintf("%s.%s: %v", d.Element, d.Attr, d.err)
	}
	return fmt.Sprintf("%s.%s=%q: %v", d.Element, d.Attr, d.Value, d.err)
}

func (d *DecodeError) Unwrap() error {
	return d.err
}

func newDecodeError(element string, attr string, value string, err error) *DecodeError {
	return &DecodeError{
		Element: element,
		Attr:    attr,
		Value:   value,
		err:     err,
	}
}

// decoder carries the per-parse context shared by the record decode
// functions. Unknown code tokens are reported through the logger.
type decoder struct {
	logger *slog.Logger
}

func newDecoder(logger *slog.Logger) *decoder {
	return &decoder{
		logger: logger,
	}
}

// required errors when a mandatory attribute is empty or missing. The empty
// string and an absent attribute are indistinguishable on the wire.
func (c *decoder) required(element string, attr string, value string) (string, error) {
	if value == "" {
		return "", newDecodeError(element, attr, "", fmt.Errorf("missing mandatory attribute"))
	}
	return value, nil
}

func (c *decoder) date(element string, attr string, value string) (Date, error) {
	if value == "" {
		return Date{}, newDecodeError(element, attr, "", fmt.Errorf("missing mandatory attribute"))
	}
	date, err := ParseDate(value)
	if err != nil {
		return Date{}, newDecodeError(element, attr, value, err)
	}
	return date, nil
}

func (c *decoder) optionalDate(element string, attr string, value string) (*Date, error) {
	if value == "" {
		return nil, nil
	}
	date, err := ParseDate(value)
	if err != nil {
		return nil, newDecodeError(element, attr, value, err)
	}
	return &date, nil
}

func (c *decoder) decimal(element string, attr string, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, newDecodeError(element, attr, "", fmt.Errorf("missing mandatory attribute"))
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, newDecodeError(element, attr, value, fmt.Errorf("invalid decimal: %w", err))
	}
	return d, nil
}

func (c *decoder) optionalDecimal(element string, attr string, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, newDecodeError(element, attr, value, fmt.Errorf("invalid decimal: %w", err))
	}
	return &d, nil
}

// optionalBool decodes the Y/N convention. Only Y, y, N, and n are accepted;
// any other non-empty value is an error rather than a silent false.
func (c *decoder) optionalBool(element string, attr string, value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "Y", "y":
		b := true
		return &b, nil
	case "N", "n":
		b := false
		return &b, nil
	default:
		return nil, newDecodeError(element, attr, value, fmt.Errorf("invalid boolean: expected Y or N"))
	}
}

// codes decodes a semicolon-delimited transaction code list, preserving
// token order and multiplicity. Unrecognized tokens decode to
// TransactionCodeUnknown and are logged.
func (c *decoder) codes(element string, attr string, value string) []TransactionCode {
	if value == "" {
		return nil
	}
	tokens := strings.Split(value, ";")
	codes := make([]TransactionCode, 0, len(tokens))
	for _, token := range tokens {
		code := ParseTransactionCode(token)
		if code == TransactionCodeUnknown {
			c.warnUnknown(element, attr, token)
		}
		codes = append(codes, code)
	}
	return codes
}

// warnUnknown reports a code token that fell through to a table's Unknown
// member.
func (c *decoder) warnUnknown(element string, attr string, token string) {
	c.logger.Warn(
		"unknown code",
		"element", element,
		"attr", attr,
		"token", token,
	)
}

func (c *decoder) assetCategory(element string, attr string, value string) AssetCategory {
	category := ParseAssetCategory(value)
	if category == AssetCategoryUnknown {
		c.warnUnknown(element, attr, value)
	}
	return category
}

func (c *decoder) optionalBuySell(element string, attr string, value string) BuySell {
	if value == "" {
		return ""
	}
	side := ParseBuySell(value)
	if side == BuySellUnknown {
		c.warnUnknown(element, attr, value)
	}
	return side
}

func (c *decoder) optionalOpenClose(element string, attr string, value string) OpenClose {
	if value == "" {
		return ""
	}
	indicator := ParseOpenClose(value)
	if indicator == OpenCloseUnknown {
		c.warnUnknown(element, attr, value)
	}
	return indicator
}

func (c *decoder) optionalOrderType(element string, attr string, value string) OrderType {
	if value == "" {
		return ""
	}
	orderType := ParseOrderType(value)
	if orderType == OrderTypeUnknown {
		c.warnUnknown(element, attr, value)
	}
	return orderType
}

func (c *decoder) optionalPutCall(element string, attr string, value string) PutCall {
	if value == "" {
		return ""
	}
	putCall := ParsePutCall(value)
	if putCall == PutCallUnknown {
		c.warnUnknown(element, attr, value)
	}
	return putCall
}

func (c *decoder) optionalLongShort(element string, attr string, value string) LongShort {
	if value == "" {
		return ""
	}
	side := ParseLongShort(value)
	if side == LongShortUnknown {
		c.warnUnknown(element, attr, value)
	}
	return side
}

func (c *decoder) optionalTradeType(element string, attr string, value string) TradeType {
	if value == "" {
		return ""
	}
	tradeType := ParseTradeType(value)
	if tradeType == TradeTypeUnknown {
		c.warnUnknown(element, attr, value)
	}
	return tradeType
}

func (c *decoder) optionalCashTransactionType(element string, attr string, value string) CashTransactionType {
	if value == "" {
		return ""
	}
	transactionType := ParseCashTransactionType(value)
	if transactionType == CashTransactionTypeUnknown {
		c.warnUnknown(element, attr, value)
	}
	return transactionType
}

func (c *decoder) optionalCorporateActionType(element string, attr string, value string) CorporateActionType {
	if value == "" {
		return ""
	}
	actionType := ParseCorporateActionType(value)
	if actionType == CorporateActionTypeUnknown {
		c.warnUnknown(element, attr, value)
	}
	return actionType
}

func (c *decoder) optionalTransferType(element string, attr string, value string) TransferType {
	if value == "" {
		return ""
	}
	transferType := ParseTransferType(value)
	if transferType == TransferTypeUnknown {
		c.warnUnknown(element, attr, value)
	}
	return transferType
}

func (c *decoder) optionalOptionAction(element string, attr string, value string) OptionAction {
	if value == "" {
		return ""
	}
	action := ParseOptionAction(value)
	if action == OptionActionUnknown {
		c.warnUnknown(element, attr, value)
	}
	return action
}

func (c *decoder) optionalSecurityIDType(element string, attr string, value string) SecurityIDType {
	if value == "" {
		return ""
	}
	idType := ParseSecurityIDType(value)
	if idType == SecurityIDTypeUnknown {
		c.warnUnknown(element, attr, value)
	}
	return idType
}

func (c *decoder) optionalSubCategory(element string, attr string, value string) SubCategory {
	if value == "" {
		return ""
	}
	subCategory := ParseSubCategory(value)
	if subCategory == SubCategoryUnknown {
		c.warnUnknown(element, attr, value)
	}
	return subCategory
}

func (c *decoder) optionalLevelOfDetail(element string, attr string, value string) LevelOfDetail {
	if value == "" {
		return ""
	}
	levelOfDetail := ParseLevelOfDetail(value)
	if levelOfDetail == LevelOfDetailUnknown {
		c.warnUnknown(element, attr, value)
	}
	return levelOfDetail
}
