package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPMetricsObserveAndExpose(t *testing.T) {
	m := NewHTTPMetrics()
	m.Observe("GET", "/samples", 200, 42*time.Millisecond)
	m.Observe("GET", "/samples", 200, 17*time.Millisecond)
	m.Observe("POST", "", 500, time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `http_requests_total{method="GET",route="/samples",status="200"} 2`) {
		t.Fatalf("request counter missing from exposition:\n%s", body)
	}
	if !strings.Contains(body, `route="unmatched"`) {
		t.Fatalf("empty route should be normalized:\n%s", body)
	}
	if !strings.Contains(body, "http_request_duration_seconds") {
		t.Fatalf("duration histogram missing from exposition")
	}
}

func TestNilHTTPMetricsIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/x", 200, time.Second)
	if m.Handler() == nil {
		t.Fatal("nil metrics should still return a handler")
	}
}
