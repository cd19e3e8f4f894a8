package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"valid id kept", "abc-123_XYZ", true},
		{"empty replaced", "", false},
		{"spaces replaced", "has spaces", false},
		{"too long replaced", string(make([]byte, 65)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeRequestID(tc.incoming)
			if tc.keep && got != tc.incoming {
				t.Fatalf("expected %q kept, got %q", tc.incoming, got)
			}
			if !tc.keep && (got == tc.incoming || got == "") {
				t.Fatalf("expected replacement id, got %q", got)
			}
		})
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(req); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %s", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.5" {
		t.Fatalf("expected first forwarded ip, got %s", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty ip for nil request, got %s", got)
	}
}
