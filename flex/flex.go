// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package flex parses Interactive Brokers FLEX XML statements.
//
// Two document shapes are supported: activity statements
// (FlexQueryResponse, produced by scheduled Activity FLEX queries) and
// trade confirmation statements (TradeConfirmationStatement, refreshed
// after each execution). Statements decode into immutable value graphs
// with exact decimals for all monetary and quantity fields.
//
// Structural problems (malformed XML, a missing mandatory attribute, an
// unknown root element) and value problems (an unparseable date, decimal,
// or boolean) fail the whole decode. Unknown code-table tokens and
// unmodeled sections never do: codes fall back to each table's Unknown
// member and are reported through the parser's logger, and unrecognized
// sections are skipped.
package flex

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// StatementType identifies the document shape of a FLEX file.
type StatementType string

// Statement types.
const (
	// StatementTypeActivity is a FlexQueryResponse activity document.
	StatementTypeActivity StatementType = "activity"
	// StatementTypeTradeConfirmation is a TradeConfirmationStatement document.
	StatementTypeTradeConfirmation StatementType = "trade-confirmation"
)

const (
	activityRootName          = "FlexQueryResponse"
	tradeConfirmationRootName = "TradeConfirmationStatement"
)

// ErrNoStatements is returned when a FlexQueryResponse document contains no
// FlexStatement elements.
var ErrNoStatements = errors.New("no statements in document")

// Parser decodes FLEX statement documents.
type Parser interface {
	// ParseActivity parses an activity document and returns its first
	// statement. Most documents contain exactly one.
	ParseActivity(data []byte) (ActivityStatement, error)
	// ParseActivityStatements parses an activity document and returns all
	// of its statements in document order.
	ParseActivityStatements(data []byte) ([]ActivityStatement, error)
	// ParseTradeConfirmation parses a trade confirmation document.
	ParseTradeConfirmation(data []byte) (TradeConfirmationStatement, error)
}

// NewParser returns a new Parser.
//
// Unknown code-table tokens are logged at warn level. By default the logger
// discards everything; use ParserWithLogger to surface the warnings.
func NewParser(options ...ParserOption) Parser {
	parser := &parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// ParserOption is an option for a new Parser.
type ParserOption func(*parser)

// ParserWithLogger returns a new ParserOption that sets the logger used to
// report unknown code-table tokens.
//
// The default is to discard all logs.
func ParserWithLogger(logger *slog.Logger) ParserOption {
	return func(parser *parser) {
		parser.logger = logger
	}
}

// DetectStatementType inspects a document's root element and reports which
// statement shape it carries. Any root other than FlexQueryResponse or
// TradeConfirmationStatement is an error.
func DetectStatementType(data []byte) (StatementType, error) {
	root, err := rootElementName(data)
	if err != nil {
		return "", err
	}
	switch root {
	case activityRootName:
		return StatementTypeActivity, nil
	case tradeConfirmationRootName:
		return StatementTypeTradeConfirmation, nil
	default:
		return "", fmt.Errorf("unknown root element %q", root)
	}
}

// *** PRIVATE ***

type parser struct {
	logger *slog.Logger
}

func (p *parser) ParseActivity(data []byte) (ActivityStatement, error) {
	statements, err := p.ParseActivityStatements(data)
	if err != nil {
		return ActivityStatement{}, err
	}
	return statements[0], nil
}

func (p *parser) ParseActivityStatements(data []byte) ([]ActivityStatement, error) {
	if err := expectRootElement(data, activityRootName); err != nil {
		return nil, err
	}
	var raw rawFlexQueryResponse
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed activity document: %w", err)
	}
	if len(raw.FlexStatements.Statements) == 0 {
		return nil, ErrNoStatements
	}
	c := newDecoder(p.logger)
	statements := make([]ActivityStatement, 0, len(raw.FlexStatements.Statements))
	for i := range raw.FlexStatements.Statements {
		statement, err := c.decodeStatement(&raw.FlexStatements.Statements[i])
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

func (p *parser) ParseTradeConfirmation(data []byte) (TradeConfirmationStatement, error) {
	if err := expectRootElement(data, tradeConfirmationRootName); err != nil {
		return TradeConfirmationStatement{}, err
	}
	var raw rawTradeConfirmation
	if err := xml.Unmarshal(data, &raw); err != nil {
		return TradeConfirmationStatement{}, fmt.Errorf("malformed trade confirmation document: %w", err)
	}
	return newDecoder(p.logger).decodeTradeConfirmation(&raw)
}

// rootElementName returns the local name of the document's root element.
func rootElementName(data []byte) (string, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errors.New("document has no root element")
			}
			return "", fmt.Errorf("malformed document: %w", err)
		}
		if start, ok := token.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

func expectRootElement(data []byte, name string) error {
	root, err := rootElementName(data)
	if err != nil {
		return err
	}
	if root != name {
		return fmt.Errorf("unknown root element %q: expected %q", root, name)
	}
	return nil
}
