// Copyright 2026 Peter Edge
//
// All rights reserved.

package flexquery

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/henk789/ib-flex/flex"
	"github.com/stretchr/testify/require"
)

const testStatementXML = `<FlexQueryResponse queryName="Test" type="AF">
<FlexStatements count="1">
<FlexStatement accountId="U1234567" fromDate="2025-01-01" toDate="2025-01-31" whenGenerated="2025-02-01;040000">
<Trades>
<Trade accountId="U1234567" conid="265598" symbol="AAPL" assetCategory="STK" currency="USD" buySell="BUY" quantity="100" tradePrice="185.50"/>
</Trades>
</FlexStatement>
</FlexStatements>
</FlexQueryResponse>`

func newTestClient(t *testing.T, handler http.Handler) Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(
		slog.New(slog.DiscardHandler),
		ClientWithHTTPClient(server.Client()),
		ClientWithBaseURL(server.URL),
	)
}

func newTestHandler(t *testing.T, getStatement http.HandlerFunc) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(sendRequestPath, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, userAgent, r.Header.Get("User-Agent"))
		require.Equal(t, "TOKEN", r.URL.Query().Get("t"))
		require.Equal(t, "3", r.URL.Query().Get("v"))
		fmt.Fprint(w, `<FlexStatementResponse timestamp="01 February, 2025 04:00 AM EST">
<Status>Success</Status>
<ReferenceCode>REF123</ReferenceCode>
<Url>GetStatement</Url>
</FlexStatementResponse>`)
	})
	mux.HandleFunc(getStatementPath, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, userAgent, r.Header.Get("User-Agent"))
		require.Equal(t, "REF123", r.URL.Query().Get("q"))
		getStatement(w, r)
	})
	return mux
}

func TestDownload(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testStatementXML)
	}))
	data, err := client.Download(context.Background(), "TOKEN", "123456", flex.Date{}, flex.Date{})
	require.NoError(t, err)
	require.Equal(t, testStatementXML, string(data))
}

func TestDownloadWithDateRange(t *testing.T) {
	t.Parallel()
	var sawDates atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc(sendRequestPath, func(w http.ResponseWriter, r *http.Request) {
		// Date overrides go over the wire in compact form.
		require.Equal(t, "20250101", r.URL.Query().Get("fd"))
		require.Equal(t, "20250131", r.URL.Query().Get("td"))
		sawDates.Store(true)
		fmt.Fprint(w, `<FlexStatementResponse><Status>Success</Status><ReferenceCode>REF123</ReferenceCode></FlexStatementResponse>`)
	})
	mux.HandleFunc(getStatementPath, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testStatementXML)
	})
	client := newTestClient(t, mux)
	_, err := client.Download(
		context.Background(),
		"TOKEN",
		"123456",
		flex.Date{Year: 2025, Month: 1, Day: 1},
		flex.Date{Year: 2025, Month: 1, Day: 31},
	)
	require.NoError(t, err)
	require.True(t, sawDates.Load())
}

func TestDownloadValidation(t *testing.T) {
	t.Parallel()
	client := NewClient(slog.New(slog.DiscardHandler))
	ctx := context.Background()
	_, err := client.Download(ctx, "", "123456", flex.Date{}, flex.Date{})
	require.ErrorContains(t, err, "token is required")
	_, err = client.Download(ctx, "TOKEN", "", flex.Date{}, flex.Date{})
	require.ErrorContains(t, err, "query ID is required")
	_, err = client.Download(ctx, "TOKEN", "123456", flex.Date{Year: 2025, Month: 1, Day: 1}, flex.Date{})
	require.ErrorContains(t, err, "both be set or both be zero")
}

func TestDownloadFatalServiceError(t *testing.T) {
	t.Parallel()
	var calls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc(sendRequestPath, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `<FlexStatementResponse>
<Status>Fail</Status>
<ErrorCode>1020</ErrorCode>
<ErrorMessage>Invalid request or unable to validate request.</ErrorMessage>
</FlexStatementResponse>`)
	})
	client := newTestClient(t, mux)
	_, err := client.Download(context.Background(), "TOKEN", "123456", flex.Date{}, flex.Date{})
	require.ErrorContains(t, err, "code: 1020")
	// A non-transient error code must not be retried.
	require.Equal(t, int64(1), calls.Load())
}

func TestDownloadRetriesStatementGeneration(t *testing.T) {
	t.Parallel()
	// The first poll reports 1019 (still generating); the retry gets the
	// statement. This test waits out one backoff delay.
	var calls atomic.Int64
	client := newTestClient(t, newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			fmt.Fprint(w, `<FlexStatementResponse>
<Status>Warn</Status>
<ErrorCode>1019</ErrorCode>
<ErrorMessage>Statement generation in progress. Please try again shortly.</ErrorMessage>
</FlexStatementResponse>`)
			return
		}
		fmt.Fprint(w, testStatementXML)
	}))
	data, err := client.Download(context.Background(), "TOKEN", "123456", flex.Date{}, flex.Date{})
	require.NoError(t, err)
	require.Equal(t, testStatementXML, string(data))
	require.Equal(t, int64(2), calls.Load())
}

func TestDownloadHTTPError(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	_, err := client.Download(context.Background(), "TOKEN", "123456", flex.Date{}, flex.Date{})
	require.ErrorContains(t, err, "unexpected status 403")
}

func TestDownloadActivity(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testStatementXML)
	}))
	statements, err := client.DownloadActivity(context.Background(), "TOKEN", "123456", flex.Date{}, flex.Date{})
	require.NoError(t, err)
	require.Len(t, statements, 1)
	require.Equal(t, "U1234567", statements[0].AccountID)
	require.Len(t, statements[0].Trades, 1)
	require.Equal(t, "AAPL", statements[0].Trades[0].Symbol)
}
