// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDecoder() *decoder {
	return newDecoder(slog.New(slog.DiscardHandler))
}

func TestDecodeErrorMessage(t *testing.T) {
	t.Parallel()
	underlying := errors.New("invalid decimal")
	err := newDecodeError("Trade", "tradePrice", "abc", underlying)
	require.Equal(t, `Trade.tradePrice="abc": invalid decimal`, err.Error())
	require.ErrorIs(t, err, underlying)

	err = newDecodeError("Trade", "accountId", "", errors.New("missing mandatory attribute"))
	require.Equal(t, "Trade.accountId: missing mandatory attribute", err.Error())
}

func TestDecoderRequired(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()
	value, err := c.required("Trade", "accountId", "U1234567")
	require.NoError(t, err)
	require.Equal(t, "U1234567", value)

	_, err = c.required("Trade", "accountId", "")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "Trade", decodeErr.Element)
	require.Equal(t, "accountId", decodeErr.Attr)
}

func TestDecoderDate(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()
	// Both wire forms decode to the same Date.
	iso, err := c.date("FlexStatement", "fromDate", "2025-01-15")
	require.NoError(t, err)
	compact, err := c.date("FlexStatement", "fromDate", "20250115")
	require.NoError(t, err)
	require.Equal(t, iso, compact)

	_, err = c.date("FlexStatement", "fromDate", "")
	require.Error(t, err)
	_, err = c.date("FlexStatement", "fromDate", "01/15/2025")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "01/15/2025", decodeErr.Value)

	date, err := c.optionalDate("Trade", "tradeDate", "")
	require.NoError(t, err)
	require.Nil(t, date)
	date, err = c.optionalDate("Trade", "tradeDate", "20250115")
	require.NoError(t, err)
	require.Equal(t, &Date{2025, 1, 15}, date)
}

func TestDecoderDecimal(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()
	// 18 significant digits survive the round trip exactly.
	const exact = "123456.789012345678"
	d, err := c.decimal("Trade", "tradePrice", exact)
	require.NoError(t, err)
	require.Equal(t, exact, d.String())

	d, err = c.decimal("Trade", "quantity", "-0.000000001")
	require.NoError(t, err)
	require.Equal(t, "-0.000000001", d.String())

	_, err = c.decimal("Trade", "tradePrice", "")
	require.Error(t, err)
	_, err = c.decimal("Trade", "tradePrice", "12.34.56")
	require.Error(t, err)

	optional, err := c.optionalDecimal("Trade", "proceeds", "")
	require.NoError(t, err)
	require.Nil(t, optional)
	optional, err = c.optionalDecimal("Trade", "proceeds", "18550")
	require.NoError(t, err)
	require.Equal(t, "18550", optional.String())
	_, err = c.optionalDecimal("Trade", "proceeds", "abc")
	require.Error(t, err)
}

func TestDecoderOptionalBool(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()
	for value, want := range map[string]bool{
		"Y": true,
		"y": true,
		"N": false,
		"n": false,
	} {
		b, err := c.optionalBool("Trade", "isAPIOrder", value)
		require.NoError(t, err, value)
		require.NotNil(t, b, value)
		require.Equal(t, want, *b, value)
	}

	b, err := c.optionalBool("Trade", "isAPIOrder", "")
	require.NoError(t, err)
	require.Nil(t, b)

	// Anything other than Y/y/N/n is an error, not false.
	for _, value := range []string{"true", "false", "1", "0", "YES", "NO", "yes"} {
		_, err := c.optionalBool("Trade", "isAPIOrder", value)
		require.Error(t, err, value)
	}
}

func TestDecoderCodes(t *testing.T) {
	t.Parallel()
	c := newTestDecoder()
	require.Nil(t, c.codes("Trade", "notes", ""))
	require.Equal(
		t,
		[]TransactionCode{TransactionCodeClosing, TransactionCodeWashSale},
		c.codes("Trade", "notes", "C;W"),
	)
	// Order and multiplicity are preserved.
	require.Equal(
		t,
		[]TransactionCode{TransactionCodeOpening, TransactionCodeClosing, TransactionCodeOpening},
		c.codes("Trade", "notes", "P;C;P"),
	)
	// Unknown tokens decode to Unknown in place.
	require.Equal(
		t,
		[]TransactionCode{TransactionCodeClosing, TransactionCodeUnknown},
		c.codes("Trade", "notes", "C;ZZ"),
	)
}

func TestDecoderWarnsUnknownCodes(t *testing.T) {
	t.Parallel()
	var buffer bytes.Buffer
	c := newDecoder(slog.New(slog.NewTextHandler(&buffer, nil)))
	codes := c.codes("Trade", "notes", "C;ZZ")
	require.Equal(t, []TransactionCode{TransactionCodeClosing, TransactionCodeUnknown}, codes)
	require.Contains(t, buffer.String(), "unknown code")
	require.Contains(t, buffer.String(), "ZZ")

	buffer.Reset()
	require.Equal(t, AssetCategoryUnknown, c.assetCategory("Trade", "assetCategory", "NEWKIND"))
	require.Contains(t, buffer.String(), "NEWKIND")
}
