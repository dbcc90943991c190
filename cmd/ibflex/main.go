// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/henk789/ib-flex/cmd/ibflex/internal/command/config"
	"github.com/henk789/ib-flex/cmd/ibflex/internal/command/download"
	"github.com/henk789/ib-flex/cmd/ibflex/internal/command/parse"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("ibflex"))
}

// newRootCommand creates the root ibflex command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Parse and download Interactive Brokers FLEX statements",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			parse.NewCommand("parse", builder),
			download.NewCommand("download", builder),
			config.NewCommand("config", builder),
		},
	}
}
