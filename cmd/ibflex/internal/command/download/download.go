// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package download implements the "download" command.
package download

import (
	"context"
	"fmt"
	"os"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/henk789/ib-flex/cmd/ibflex/internal/ibflexcmd"
	"github.com/henk789/ib-flex/flex"
	"github.com/spf13/pflag"
)

const (
	outputFlagName   = "output"
	fromDateFlagName = "from-date"
	toDateFlagName   = "to-date"
)

// NewCommand returns a new download command that downloads a FLEX statement
// via the Flex Query Web Service.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Download a FLEX statement via the Flex Query Web Service",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Output is the file to write the statement XML to.
	Output string
	// FromDate optionally overrides the query's period start.
	FromDate string
	// ToDate optionally overrides the query's period end.
	ToDate string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&f.Output, outputFlagName, "o", "statement.xml", "The file to write the statement XML to")
	flagSet.StringVar(&f.FromDate, fromDateFlagName, "", "Override the query period start (YYYY-MM-DD or YYYYMMDD, requires --to-date)")
	flagSet.StringVar(&f.ToDate, toDateFlagName, "", "Override the query period end (YYYY-MM-DD or YYYYMMDD, requires --from-date)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	token, err := ibflexcmd.Token(container)
	if err != nil {
		return err
	}
	queryID, err := ibflexcmd.QueryID(container)
	if err != nil {
		return err
	}
	var fromDate flex.Date
	if flags.FromDate != "" {
		if fromDate, err = flex.ParseDate(flags.FromDate); err != nil {
			return fmt.Errorf("--%s: %w", fromDateFlagName, err)
		}
	}
	var toDate flex.Date
	if flags.ToDate != "" {
		if toDate, err = flex.ParseDate(flags.ToDate); err != nil {
			return fmt.Errorf("--%s: %w", toDateFlagName, err)
		}
	}
	client := ibflexcmd.NewFlexQueryClient(container)
	data, err := client.Download(ctx, token, queryID, fromDate, toDate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flags.Output, data, 0o644); err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", flags.Output)
	return err
}
