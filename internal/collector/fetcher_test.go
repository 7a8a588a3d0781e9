package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const yahooBody = `{"chart":{"result":[{
  "meta":{"symbol":"^GSPC","gmtoffset":-14400},
  "timestamp":[1714570200,1714656600,1714743000],
  "indicators":{
    "quote":[{"close":[5018.39,null,5127.79]}],
    "adjclose":[{"adjclose":[5000.0,null,5100.0]}]
  }}],"error":null}}`

func TestYahooFetcher_ParsesChart(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.EscapedPath(), r.URL.RawQuery
		w.Write([]byte(yahooBody))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL + "/chart/"
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	pts, err := f.FetchDailyCloses(context.Background(), "^GSPC", start, start.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/chart/%5EGSPC" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if !strings.Contains(gotQuery, "interval=1d") || !strings.Contains(gotQuery, "period1=1714521600") {
		t.Errorf("unexpected query %q", gotQuery)
	}
	if len(pts) != 2 {
		t.Fatalf("expected null row to be skipped, got %d points", len(pts))
	}
	// 2024-05-01 13:30 UTC is 09:30 New York time on the same day.
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !pts[0].Date.Equal(want) {
		t.Errorf("expected first date %s, got %s", want, pts[0].Date)
	}
	if pts[0].Close != 5000 || pts[1].Close != 5100 {
		t.Errorf("expected adjusted closes, got %v and %v", pts[0].Close, pts[1].Close)
	}

	f.Adjusted = false
	pts, err = f.FetchDailyCloses(context.Background(), "^GSPC", start, start.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts[0].Close != 5018.39 {
		t.Errorf("expected raw close, got %v", pts[0].Close)
	}
}

func TestYahooFetcher_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		noData bool
	}{
		{"http status", http.StatusNotFound, `not found`, false},
		{"api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`, false},
		{"empty result", http.StatusOK, `{"chart":{"result":[],"error":null}}`, true},
		{"bad json", http.StatusOK, `{`, false},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(tt.body))
		}))
		f := NewYahooFetcher("")
		f.BaseURL = srv.URL + "/"
		_, err := f.FetchDailyCloses(context.Background(), "X", time.Now().AddDate(0, 0, -5), time.Now())
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
		} else if errors.Is(err, ErrNoData) != tt.noData {
			t.Errorf("%s: ErrNoData match = %v, want %v (%v)", tt.name, !tt.noData, tt.noData, err)
		}
		srv.Close()
	}
}

func TestRESTFetcher_ParsesBars(t *testing.T) {
	var auth, query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, query = r.Header.Get("Authorization"), r.URL.RawQuery
		if r.URL.Path != "/api/v1/bars/daily" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`[{"timestamp":1714694400,"close":51.2},{"timestamp":1714608000,"close":50.9},{"timestamp":1714780800,"close":null}]`))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "secret", "")
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	pts, err := f.FetchDailyCloses(context.Background(), "EBAY", start, start.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", auth)
	}
	if !strings.Contains(query, "from=2024-05-01") || !strings.Contains(query, "symbol=EBAY") {
		t.Errorf("unexpected query %q", query)
	}
	if len(pts) != 2 || pts[0].Close != 50.9 || pts[1].Close != 51.2 {
		t.Errorf("expected sorted closes [50.9 51.2], got %+v", pts)
	}
}
