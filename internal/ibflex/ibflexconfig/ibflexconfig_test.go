// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibflexconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(ExternalConfig{
		Version: "v1",
		IBKR: ExternalIBKRConfig{
			QueryID: "123456",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "123456", config.IBKRQueryID)

	_, err = NewConfig(ExternalConfig{
		Version: "v2",
		IBKR: ExternalIBKRConfig{
			QueryID: "123456",
		},
	})
	require.ErrorContains(t, err, `unsupported config version "v2"`)

	_, err = NewConfig(ExternalConfig{Version: "v1"})
	require.ErrorContains(t, err, "ibkr.query_id is required")
}

func TestInitAndReadConfig(t *testing.T) {
	t.Parallel()
	configDirPath := filepath.Join(t.TempDir(), "ibflex")

	_, err := ReadConfig(configDirPath)
	require.ErrorContains(t, err, `run "ibflex config init"`)

	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(configDirPath), filePath)

	// The template parses strictly but is not yet valid: the query ID is
	// left for the user to fill in.
	err = ValidateConfig(configDirPath)
	require.ErrorContains(t, err, "ibkr.query_id is required")

	// A second init must not clobber the existing file.
	_, err = InitConfig(configDirPath)
	require.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(filePath, []byte("version: v1\nibkr:\n  query_id: \"123456\"\n"), 0o644))
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, "123456", config.IBKRQueryID)
	require.NoError(t, ValidateConfig(configDirPath))
}

func TestReadConfigRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	require.NoError(t, os.WriteFile(
		ConfigFilePath(configDirPath),
		[]byte("version: v1\nibkr:\n  query_id: \"123456\"\n  token: \"secret\"\n"),
		0o644,
	))
	_, err := ReadConfig(configDirPath)
	require.ErrorContains(t, err, "parsing config file")
}
