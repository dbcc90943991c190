// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package flexquery provides an API client for the IBKR Flex Query Web Service.
//
// The Flex Query Web Service is a two-step REST API:
//  1. SendRequest: Submits a query and returns a reference code.
//  2. GetStatement: Polls with the reference code until the XML statement is ready.
//
// Both endpoints require a Flex Web Service token for authentication and
// a "Java" User-Agent header. Both endpoints may return transient errors
// (e.g., 1001 server busy, 1019 statement generating) which are retried
// with exponential backoff.
package flexquery

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/henk789/ib-flex/flex"
	"github.com/henk789/ib-flex/internal/pkg/backoff"
)

const (
	// defaultBaseURL is the IBKR Flex Web Service base URL.
	defaultBaseURL = "https://ndcdyn.interactivebrokers.com/AccountManagement/FlexWebService"
	// sendRequestPath initiates a query.
	sendRequestPath = "/SendRequest"
	// getStatementPath retrieves a generated statement.
	getStatementPath = "/GetStatement"
	// userAgent is the required User-Agent header for IBKR (IBKR expects "Java").
	userAgent = "Java"
	// maxAttempts is the maximum number of attempts for each API call.
	maxAttempts = 10
	// initialRetryDelay is the initial delay before the first retry.
	initialRetryDelay = 2 * time.Second
	// maxRetryDelay is the maximum delay between retries.
	maxRetryDelay = 30 * time.Second
)

// retryableErrorCodes are IBKR error codes that indicate a transient failure.
var retryableErrorCodes = map[string]bool{
	"1001": true, // Statement could not be generated at this time.
	"1019": true, // Statement is being generated, please try again shortly.
}

// Client is the interface for downloading Flex Query data from IBKR.
type Client interface {
	// Download fetches the raw statement XML for a query.
	//
	// The token is the Flex Web Service token generated in the IBKR portal.
	// The queryID identifies which Flex Query to execute.
	// The fromDate and toDate optionally override the query's configured
	// period. Pass zero-value dates to use the query's default period.
	// If one is set, both must be set. Each request is limited to 365 days.
	Download(ctx context.Context, token string, queryID string, fromDate flex.Date, toDate flex.Date) ([]byte, error)
	// DownloadActivity fetches a query and parses it as an activity
	// document, returning one statement per IBKR account.
	DownloadActivity(ctx context.Context, token string, queryID string, fromDate flex.Date, toDate flex.Date) ([]flex.ActivityStatement, error)
}

// NewClient creates a new Flex Query API client. The logger is required.
func NewClient(logger *slog.Logger, options ...ClientOption) Client {
	c := &client{
		httpClient: http.DefaultClient,
		logger:     logger,
		baseURL:    defaultBaseURL,
		parser:     flex.NewParser(flex.ParserWithLogger(logger)),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// ClientOption is an option for a new Client.
type ClientOption func(*client)

// ClientWithHTTPClient returns a new ClientOption that sets the HTTP client
// used for requests.
//
// The default is http.DefaultClient.
func ClientWithHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *client) {
		client.httpClient = httpClient
	}
}

// ClientWithBaseURL returns a new ClientOption that overrides the Flex Web
// Service base URL.
//
// The default is the production IBKR endpoint.
func ClientWithBaseURL(baseURL string) ClientOption {
	return func(client *client) {
		client.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// *** PRIVATE ***

type client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	parser     flex.Parser
}

// sendResponse is the XML response from the SendRequest endpoint. The
// GetStatement endpoint returns the same shape when the statement is not
// ready or the request failed.
type sendResponse struct {
	XMLName       xml.Name `xml:"FlexStatementResponse"`
	Status        string   `xml:"Status"`
	ReferenceCode string   `xml:"ReferenceCode"`
	URL           string   `xml:"Url"`
	ErrorCode     string   `xml:"ErrorCode"`
	ErrorMessage  string   `xml:"ErrorMessage"`
}

func (c *client) Download(
	ctx context.Context,
	token string,
	queryID string,
	fromDate flex.Date,
	toDate flex.Date,
) ([]byte, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}
	if queryID == "" {
		return nil, errors.New("query ID is required")
	}
	// If one date override is set, both must be set.
	if fromDate.IsZero() != toDate.IsZero() {
		return nil, errors.New("fromDate and toDate must both be set or both be zero")
	}
	// Step 1: Send the request to get a reference code, with backoff on transient errors.
	referenceCode, err := c.sendRequest(ctx, token, queryID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("sending flex query request: %w", err)
	}
	c.logger.Info("flex query request sent", "reference_code", referenceCode)
	// Step 2: Poll for the statement XML using the reference code, with backoff.
	data, err := c.getStatement(ctx, token, referenceCode)
	if err != nil {
		return nil, fmt.Errorf("getting flex query statement: %w", err)
	}
	return data, nil
}

func (c *client) DownloadActivity(
	ctx context.Context,
	token string,
	queryID string,
	fromDate flex.Date,
	toDate flex.Date,
) ([]flex.ActivityStatement, error) {
	data, err := c.Download(ctx, token, queryID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	statements, err := c.parser.ParseActivityStatements(data)
	if err != nil {
		return nil, fmt.Errorf("parsing flex query response: %w", err)
	}
	return statements, nil
}

// sendRequest initiates a Flex Query and returns the reference code.
// Retries on transient IBKR errors with exponential backoff.
func (c *client) sendRequest(
	ctx context.Context,
	token string,
	queryID string,
	fromDate flex.Date,
	toDate flex.Date,
) (string, error) {
	// Parameter order matches IBKR docs: t, q, [fd, td], v.
	reqURL := fmt.Sprintf("%s%s?t=%s&q=%s", c.baseURL, sendRequestPath, token, queryID)
	// Date range overrides use the compact YYYYMMDD form.
	if !fromDate.IsZero() && !toDate.IsZero() {
		reqURL += fmt.Sprintf(
			"&fd=%04d%02d%02d&td=%04d%02d%02d",
			fromDate.Year, fromDate.Month, fromDate.Day,
			toDate.Year, toDate.Month, toDate.Day,
		)
	}
	reqURL += "&v=3"
	return backoff.Retry(
		ctx,
		backoff.Config{
			MaxAttempts:  maxAttempts,
			InitialDelay: initialRetryDelay,
			MaxDelay:     maxRetryDelay,
		},
		func(ctx context.Context, attempt int) (string, error) {
			if attempt > 0 {
				c.logger.Info("retrying send request", "attempt", attempt+1)
			}
			body, err := c.get(ctx, reqURL)
			if err != nil {
				return "", err
			}
			var sendResp sendResponse
			if err := xml.Unmarshal(body, &sendResp); err != nil {
				return "", fmt.Errorf("parsing send response: %w", err)
			}
			if sendResp.Status != "Success" {
				return "", c.serviceError(&sendResp)
			}
			return sendResp.ReferenceCode, nil
		},
	)
}

// getStatement polls the GetStatement endpoint until the data is ready.
// Retries on transient IBKR errors with exponential backoff.
func (c *client) getStatement(ctx context.Context, token string, referenceCode string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s?t=%s&q=%s&v=3", c.baseURL, getStatementPath, token, referenceCode)
	return backoff.Retry(
		ctx,
		backoff.Config{
			MaxAttempts:  maxAttempts,
			InitialDelay: initialRetryDelay,
			MaxDelay:     maxRetryDelay,
		},
		func(ctx context.Context, attempt int) ([]byte, error) {
			if attempt > 0 {
				c.logger.Info("waiting for flex query statement", "attempt", attempt+1)
			}
			body, err := c.get(ctx, reqURL)
			if err != nil {
				return nil, err
			}
			// An error response means the statement is not ready or the
			// request failed; anything else is the statement XML itself.
			if strings.HasPrefix(strings.TrimSpace(string(body)), "<FlexStatementResponse") {
				var getResp sendResponse
				if err := xml.Unmarshal(body, &getResp); err != nil {
					return nil, fmt.Errorf("parsing get response: %w", err)
				}
				return nil, c.serviceError(&getResp)
			}
			return body, nil
		},
	)
}

func (c *client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	// IBKR requires the "Java" User-Agent header.
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// serviceError converts an IBKR error response into an error, marking
// transient error codes as retryable.
func (c *client) serviceError(resp *sendResponse) error {
	err := fmt.Errorf("%s (code: %s)", resp.ErrorMessage, resp.ErrorCode)
	if retryableErrorCodes[resp.ErrorCode] {
		c.logger.Warn("transient IBKR error, will retry", "code", resp.ErrorCode, "message", resp.ErrorMessage)
		return backoff.Retryable(err)
	}
	return err
}
