package conformance_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

// doRequest makes an HTTP request to the API server. body may be nil, a raw
// string sent verbatim, or any value marshalled as JSON. The caller is
// responsible for closing the response body.
func doRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	return doRequestTo(t, serverURL, method, path, body)
}

func doRequestTo(t *testing.T, base, method, path string, body any) *http.Response {
	t.Helper()

	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, base+path, bodyReader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return b
}

// readJSON reads the response body and unmarshals it into a map.
func readJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	b := readBody(t, resp)

	var result map[string]any
	if err := json.Unmarshal(b, &result); err != nil {
		t.Fatalf("unmarshal response (status %d): body=%s err=%v", resp.StatusCode, string(b), err)
	}
	return result
}

// readJSONList reads the response body and unmarshals it into a list of
// objects.
func readJSONList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	b := readBody(t, resp)

	var result []map[string]any
	if err := json.Unmarshal(b, &result); err != nil {
		t.Fatalf("unmarshal list (status %d): body=%s err=%v", resp.StatusCode, string(b), err)
	}
	return result
}

// mustStatus asserts the HTTP response has the expected status code.
func mustStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d; body=%s", expected, resp.StatusCode, string(b))
	}
}

// resetServer calls POST /_crm/reset on the ops listener to empty every table.
func resetServer(t *testing.T) {
	t.Helper()
	resp := doRequestTo(t, opsURL, http.MethodPost, "/_crm/reset", nil)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("reset server failed: status=%d body=%s", resp.StatusCode, string(b))
	}
}

// assertError checks a {"error": ...} body. An empty want only requires a
// non-empty message.
func assertError(t *testing.T, body map[string]any, want string) {
	t.Helper()
	msg, ok := body["error"].(string)
	if !ok {
		t.Fatalf("expected string field \"error\", got %v", body)
	}
	if want == "" && msg == "" {
		t.Error("expected non-empty error message")
	}
	if want != "" && msg != want {
		t.Errorf("error = %q, want %q", msg, want)
	}
}

// assertCORS checks the three cross-origin headers every response carries.
func assertCORS(t *testing.T, resp *http.Response) {
	t.Helper()
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
	for k, v := range want {
		if got := resp.Header.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

// assertNull checks that key is present and JSON null.
func assertNull(t *testing.T, obj map[string]any, key string) {
	t.Helper()
	v, ok := obj[key]
	if !ok {
		t.Errorf("expected field %q to be present", key)
		return
	}
	if v != nil {
		t.Errorf("expected %q to be null, got %v", key, v)
	}
}

// idOf returns the numeric id field as a path segment.
func idOf(t *testing.T, obj map[string]any) string {
	t.Helper()
	id, ok := obj["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("expected positive numeric id, got %v", obj["id"])
	}
	return fmt.Sprintf("%d", int64(id))
}

// create POSTs body to path, expects 201 with the given message, and returns
// the new id.
func create(t *testing.T, path string, body any, message string) string {
	t.Helper()
	resp := doRequest(t, http.MethodPost, path, body)
	mustStatus(t, resp, http.StatusCreated)
	result := readJSON(t, resp)
	if result["message"] != message {
		t.Errorf("message = %v, want %q", result["message"], message)
	}
	return idOf(t, result)
}
