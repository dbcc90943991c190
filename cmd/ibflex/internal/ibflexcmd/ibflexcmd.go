// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexcmd provides shared wiring for ibflex commands that talk to
// the Flex Web Service (reading config, getting the IBKR token, constructing
// the client).
package ibflexcmd

import (
	"errors"

	"buf.build/go/app/appext"
	"github.com/henk789/ib-flex/flexquery"
	"github.com/henk789/ib-flex/internal/ibflex/ibflexconfig"
)

// ibkrTokenEnvVar is the environment variable name for the IBKR Flex Web Service token.
const ibkrTokenEnvVar = "IBKR_TOKEN"

// NewFlexQueryClient constructs a Flex Query client from the appext container.
func NewFlexQueryClient(container appext.Container) flexquery.Client {
	return flexquery.NewClient(container.Logger())
}

// Token reads the IBKR Flex Web Service token from the environment via the
// app container.
func Token(container appext.Container) (string, error) {
	token := container.Env(ibkrTokenEnvVar)
	if token == "" {
		return "", errors.New("IBKR_TOKEN environment variable is required, set it to your IBKR Flex Web Service token (see \"ibflex --help\" for details)")
	}
	return token, nil
}

// QueryID reads the configured Flex Query ID from the config file.
func QueryID(container appext.Container) (string, error) {
	config, err := ibflexconfig.ReadConfig(container.ConfigDirPath())
	if err != nil {
		return "", err
	}
	return config.IBKRQueryID, nil
}
