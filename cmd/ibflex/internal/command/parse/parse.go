// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package parse implements the "parse" command.
package parse

import (
	"context"
	"fmt"
	"os"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/henk789/ib-flex/flex"
	"github.com/henk789/ib-flex/internal/pkg/cliio"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

const formatFlagName = "format"

// NewCommand returns a new parse command that parses a FLEX statement file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " path/to/statement.xml",
		Short: "Parse a FLEX statement file and print its trades",
		Args:  appcmd.ExactArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Format, formatFlagName, "table", "The output format (table, csv, json)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(container.Arg(0))
	if err != nil {
		return err
	}
	parser := flex.NewParser(flex.ParserWithLogger(container.Logger()))
	statementType, err := flex.DetectStatementType(data)
	if err != nil {
		return err
	}
	switch statementType {
	case flex.StatementTypeActivity:
		statements, err := parser.ParseActivityStatements(data)
		if err != nil {
			return err
		}
		if format == cliio.FormatJSON {
			return cliio.WriteJSON(container.Stdout(), statements...)
		}
		for _, statement := range statements {
			if err := writeStatementHeader(container, &statement); err != nil {
				return err
			}
			if err := writeTrades(container, format, statement.Trades); err != nil {
				return err
			}
		}
		return nil
	case flex.StatementTypeTradeConfirmation:
		statement, err := parser.ParseTradeConfirmation(data)
		if err != nil {
			return err
		}
		if format == cliio.FormatJSON {
			return cliio.WriteJSON(container.Stdout(), statement)
		}
		return writeTrades(container, format, statement.Trades)
	default:
		return fmt.Errorf("unknown statement type %q", statementType)
	}
}

func writeStatementHeader(container appext.Container, statement *flex.ActivityStatement) error {
	_, err := fmt.Fprintf(
		container.Stdout(),
		"# %s %s to %s: %d trades, %d positions, %d cash transactions\n",
		statement.AccountID,
		statement.FromDate,
		statement.ToDate,
		len(statement.Trades),
		len(statement.OpenPositions),
		len(statement.CashTransactions),
	)
	return err
}

func writeTrades(container appext.Container, format cliio.Format, trades []flex.Trade) error {
	headers := []string{"TRADE DATE", "SYMBOL", "SIDE", "QUANTITY", "PRICE", "PROCEEDS", "CURRENCY"}
	rows := make([][]string, 0, len(trades))
	for i := range trades {
		trade := &trades[i]
		rows = append(rows, []string{
			dateString(trade.TradeDate),
			trade.Symbol,
			string(trade.BuySell),
			decimalString(trade.Quantity),
			decimalString(trade.TradePrice),
			decimalString(trade.Proceeds),
			trade.Currency,
		})
	}
	switch format {
	case cliio.FormatCSV:
		return cliio.WriteCSVRecords(container.Stdout(), append([][]string{headers}, rows...))
	default:
		return cliio.WriteTable(container.Stdout(), headers, rows)
	}
}

func dateString(date *flex.Date) string {
	if date == nil {
		return ""
	}
	return date.String()
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
