// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]Format{
		"table": FormatTable,
		"csv":   FormatCSV,
		"json":  FormatJSON,
		"TABLE": FormatTable,
		"Json":  FormatJSON,
	} {
		format, err := ParseFormat(input)
		require.NoError(t, err, input)
		require.Equal(t, want, format, input)
	}
	_, err := ParseFormat("xml")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestForFileRoundTrip(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, ForWriteFile(filePath, func(writer io.Writer) error {
		_, err := writer.Write([]byte("hello"))
		return err
	}))
	var read []byte
	require.NoError(t, ForFile(filePath, func(reader io.Reader) error {
		var err error
		read, err = io.ReadAll(reader)
		return err
	}))
	require.Equal(t, "hello", string(read))

	require.Error(t, ForFile(filepath.Join(t.TempDir(), "missing.txt"), func(io.Reader) error {
		return nil
	}))
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	var buffer bytes.Buffer
	require.NoError(t, WriteTable(
		&buffer,
		[]string{"SYMBOL", "QUANTITY"},
		[][]string{
			{"AAPL", "100"},
			{"MSFT", "-25"},
		},
	))
	output := buffer.String()
	require.Contains(t, output, "SYMBOL")
	require.Contains(t, output, "AAPL")
	require.Contains(t, output, "-25")
}

func TestWriteCSVRecords(t *testing.T) {
	t.Parallel()
	var buffer bytes.Buffer
	require.NoError(t, WriteCSVRecords(&buffer, [][]string{
		{"symbol", "description"},
		{"AAPL", "APPLE, INC"},
	}))
	require.Equal(t, "symbol,description\nAAPL,\"APPLE, INC\"\n", buffer.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	type object struct {
		Symbol string `json:"symbol"`
	}
	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(&buffer, object{Symbol: "AAPL"}, object{Symbol: "MSFT"}))
	require.Equal(t, "{\"symbol\":\"AAPL\"}\n{\"symbol\":\"MSFT\"}\n", buffer.String())
}

func TestUnmarshalYAMLStrict(t *testing.T) {
	t.Parallel()
	type config struct {
		Version string `yaml:"version"`
	}
	var c config
	require.NoError(t, UnmarshalYAMLStrict([]byte("version: v1\n"), &c))
	require.Equal(t, "v1", c.Version)

	// Unknown fields are rejected.
	require.Error(t, UnmarshalYAMLStrict([]byte("version: v1\nextra: true\n"), &config{}))
	// Empty input is a no-op.
	require.NoError(t, UnmarshalYAMLStrict(nil, &config{}))
}

func TestExpandHome(t *testing.T) {
	t.Parallel()
	path, err := ExpandHome("/absolute/path")
	require.NoError(t, err)
	require.Equal(t, "/absolute/path", path)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	path, err = ExpandHome("~/config")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(homeDir, "config"), path)
}
