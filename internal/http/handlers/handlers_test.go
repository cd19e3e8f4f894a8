package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"datefmt-service/internal/metrics"
	"datefmt-service/internal/testutil"
)

func formatURL(value, pattern string) string {
	q := url.Values{}
	if value != "" {
		q.Set("value", value)
	}
	if pattern != "" {
		q.Set("pattern", pattern)
	}
	return "/format?" + q.Encode()
}

func parseURL(text, pattern string) string {
	q := url.Values{}
	if text != "" {
		q.Set("text", text)
	}
	if pattern != "" {
		q.Set("pattern", pattern)
	}
	return "/parse?" + q.Encode()
}

func TestHealth(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestPatterns(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Patterns), http.MethodGet, "/patterns", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp []PatternInfo
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(resp))
	}
	if resp[0].Name != "DEFAULT" || resp[0].Pattern != "MMM d yyyy hh:mm" {
		t.Fatalf("unexpected first pattern %+v", resp[0])
	}
}

func TestFormatDefaultPattern(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Format), http.MethodGet, formatURL("2017-04-19T09:05:00", ""), nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp FormatResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Formatted != "Apr 19 2017 09:05" {
		t.Fatalf("expected Apr 19 2017 09:05, got %s", resp.Formatted)
	}
	if resp.Pattern != "DEFAULT" {
		t.Fatalf("expected DEFAULT pattern label, got %s", resp.Pattern)
	}
}

func TestFormatNamedAndCustomPatterns(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	cases := []struct {
		name      string
		value     string
		pattern   string
		formatted string
		label     string
	}{
		{"date only", "2017-04-19T09:05:00", "DATEONLY", "04-19-2017", "DATEONLY"},
		{"long date", "2017-04-19T21:05:30", "longdate", "04 19 2017 09:05:30 PM", "LONGDATE"},
		{"custom", "2017-04-19T09:05:00", "yyyy/MM/dd", "2017/04/19", "custom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(h.Format), http.MethodGet, formatURL(tc.value, tc.pattern), nil)
			testutil.AssertStatus(t, rr, http.StatusOK)

			var resp FormatResponse
			testutil.DecodeJSON(t, rr, &resp)
			if resp.Formatted != tc.formatted {
				t.Fatalf("expected %s, got %s", tc.formatted, resp.Formatted)
			}
			if resp.Pattern != tc.label {
				t.Fatalf("expected label %s, got %s", tc.label, resp.Pattern)
			}
		})
	}
}

func TestFormatRejectsBadRequests(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	cases := []struct {
		name string
		path string
	}{
		{"missing value", formatURL("", "DATEONLY")},
		{"malformed value", formatURL("yesterday", "")},
		{"bad custom pattern", formatURL("2017-04-19T09:05:00", "QQ-dd")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(h.Format), http.MethodGet, tc.path, nil)
			testutil.AssertStatus(t, rr, http.StatusBadRequest)

			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			if resp["error"] == "" {
				t.Fatalf("expected error message in response")
			}
		})
	}
}

func TestFormatRejectsNonGET(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Format), http.MethodPost, formatURL("2017-04-19T09:05:00", ""), nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestParseDateOnly(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Parse), http.MethodGet, parseURL("04-19-2017", "DATEONLY"), nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp ParseResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Value != "2017-04-19T00:00:00" {
		t.Fatalf("expected midnight value, got %s", resp.Value)
	}
}

func TestParseDefaultPattern(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Parse), http.MethodGet, parseURL("Apr 19 2017 09:05", ""), nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp ParseResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Value != "2017-04-19T09:05:00" {
		t.Fatalf("expected 2017-04-19T09:05:00, got %s", resp.Value)
	}
}

func TestParseNonConformingTextReturns422(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Parse), http.MethodGet, parseURL("13-45-2020", "DATEONLY"), nil)
	testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["text"] != "13-45-2020" {
		t.Fatalf("expected offending text in response, got %s", resp["text"])
	}
	if resp["pattern"] != "MM-dd-yyyy" {
		t.Fatalf("expected resolved pattern in response, got %s", resp["pattern"])
	}
}

func TestParseRejectsBadRequests(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	cases := []struct {
		name string
		path string
	}{
		{"missing text", parseURL("", "DATEONLY")},
		{"bad custom pattern", parseURL("04-19-2017", "QQ-dd")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(h.Parse), http.MethodGet, tc.path, nil)
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
		})
	}
}

func TestHandlersLogOperationAndPattern(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(logger, nil, nil)

	testutil.Serve(http.HandlerFunc(h.Format), http.MethodGet, formatURL("2017-04-19T09:05:00", "DATEONLY"), nil)
	if !strings.Contains(buf.String(), "op=format") || !strings.Contains(buf.String(), "pattern=DATEONLY") {
		t.Fatalf("expected op and pattern fields in log, got %s", buf.String())
	}

	buf.Reset()
	testutil.Serve(http.HandlerFunc(h.Parse), http.MethodGet, parseURL("04-19-2017", "DATEONLY"), nil)
	if !strings.Contains(buf.String(), "op=parse") {
		t.Fatalf("expected op field in parse log, got %s", buf.String())
	}
}

func TestHandlersRecordOperations(t *testing.T) {
	rec := metrics.NewRecorder()
	h := NewHandler(nil, rec, nil)

	testutil.Serve(http.HandlerFunc(h.Format), http.MethodGet, formatURL("2017-04-19T09:05:00", "DATEONLY"), nil)
	testutil.Serve(http.HandlerFunc(h.Parse), http.MethodGet, parseURL("not a date", ""), nil)

	if got := rec.OperationCalls(metrics.OpFormat); got != 1 {
		t.Fatalf("expected 1 format call recorded, got %d", got)
	}
	if got := rec.OperationErrors(metrics.OpParse); got != 1 {
		t.Fatalf("expected 1 parse error recorded, got %d", got)
	}
	if rec.LastLatency(metrics.OpFormat) < 0 {
		t.Fatalf("expected non-negative latency, got %s", rec.LastLatency(metrics.OpFormat))
	}
}
