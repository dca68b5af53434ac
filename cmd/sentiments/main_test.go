package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliOutput struct {
	Timestamp int64                       `json:"timestamp"`
	Data      map[string][]map[string]any `json:"data"`
}

func execute(t *testing.T, args ...string) (cliOutput, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	var parsed cliOutput
	if err == nil {
		require.NoError(t, json.Unmarshal(out.Bytes(), &parsed), out.String())
	}
	return parsed, err
}

func TestOfflineRun(t *testing.T) {
	got, err := execute(t, "--offline", "aapl", "msft,AAPL")
	require.NoError(t, err)

	require.Len(t, got.Data, 2)
	assert.Len(t, got.Data["AAPL"], 670)
	assert.Len(t, got.Data["MSFT"], 670)
	assert.Positive(t, got.Timestamp)

	first := got.Data["AAPL"][0]
	assert.Contains(t, first["sentimentText"], "AAPL")
	assert.Contains(t, first, "futurePredictions")
}

func TestRejectsMalformedSymbol(t *testing.T) {
	_, err := execute(t, "--offline", "BRK.B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match")
}

func TestRequiresSymbol(t *testing.T) {
	_, err := execute(t, "--offline")
	require.Error(t, err)
}

func TestLiveRunUsesBaseURL(t *testing.T) {
	const n = 120
	ts := make([]string, n)
	closes := make([]string, n)
	for i := 0; i < n; i++ {
		ts[i] = fmt.Sprintf("%d", 1_600_000_000+int64(i)*86_400)
		closes[i] = fmt.Sprintf("%.2f", 100+float64(i)*0.5)
	}
	body := fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}]}}`,
		strings.Join(ts, ","), strings.Join(closes, ","))

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/v8/finance/chart/TSLA", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := execute(t, "--base-url", srv.URL, "tsla")
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())
	// 120 live points leave 60 entries after the 60-day warm-up
	require.Len(t, got.Data["TSLA"], n-60)
	assert.EqualValues(t, int64(1_600_000_000+60*86_400)*1000, got.Data["TSLA"][0]["timestamp"])
}
