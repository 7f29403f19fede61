// response.go
//
// HTTP response assertions shared by the handler and integration tests.

package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// Envelope is the standard response wrapper used by almost every route.
type Envelope map[string]interface{}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseEnvelope decodes the body and checks the success flag.
func ParseEnvelope(t *testing.T, resp *http.Response, wantSuccess bool) Envelope {
	t.Helper()
	var env Envelope
	ParseJSON(t, resp, &env)

	got, ok := env["success"].(bool)
	if !ok {
		t.Fatalf("Response has no boolean success field: %v", env)
	}
	if got != wantSuccess {
		t.Errorf("Expected success=%v, got %v. Body: %v", wantSuccess, got, env)
	}
	return env
}

// AssertErrors verifies the errors field of a failure envelope.
func AssertErrors(t *testing.T, env Envelope, expected string) {
	t.Helper()
	if env["errors"] != expected {
		t.Errorf("Expected errors %q, got %v", expected, env["errors"])
	}
}
