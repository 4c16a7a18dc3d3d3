package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates
// network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// writeEnvelope writes a success envelope wrapping data.
func writeEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal envelope data: %v", err)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `{"success":true,"data":%s}`, raw)
}

// writeFailure writes a 200 envelope with success=false and the given message.
func writeFailure(t *testing.T, w http.ResponseWriter, msg string) {
	t.Helper()
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `{"success":false,"error":%q}`, msg)
}
