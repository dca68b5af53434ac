package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHistorySourceCounter(t *testing.T) {
	before := testutil.ToFloat64(HistorySource.WithLabelValues("synthetic"))
	HistorySource.WithLabelValues("synthetic").Inc()
	if got := testutil.ToFloat64(HistorySource.WithLabelValues("synthetic")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	SentimentSymbols.Inc()
	FetchDuration.WithLabelValues("ok").Observe(0.1)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, name := range []string{"quant_sentiment_symbols_total", "quant_price_fetch_duration_seconds_bucket"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("expected %s in scrape output", name)
		}
	}
}
