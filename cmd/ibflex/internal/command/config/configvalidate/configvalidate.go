// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configvalidate implements the "config validate" command.
package configvalidate

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/henk789/ib-flex/internal/ibflex/ibflexconfig"
)

// NewCommand returns a new config validate command that checks the configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Validate the configuration file",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container)
			},
		),
	}
}

func run(_ context.Context, container appext.Container) error {
	if err := ibflexconfig.ValidateConfig(container.ConfigDirPath()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(container.Stdout(), "OK")
	return err
}
