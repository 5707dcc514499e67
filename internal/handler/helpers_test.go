package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chocolate-not-availabe/blokify/internal/config"
)

// newTestRouter builds a full router over fresh in-memory stores. The low
// bcrypt cost keeps signup-heavy tests fast.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("BCRYPT_COST", "4")
	return NewRouter(config.NewContainer())
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeResponse unmarshals a recorder body into a generic map.
func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return payload
}

// decodeListResponse unmarshals a recorder body into a slice of maps.
func decodeListResponse(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var payload []map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return payload
}

// createStory upserts a story through the API and returns its id.
func createStory(t *testing.T, router http.Handler, title, authorID string) string {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/stories", map[string]interface{}{
		"title":    title,
		"authorId": authorID,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d creating story, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	id, ok := decodeResponse(t, rr)["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected story id in response, got %s", rr.Body.String())
	}
	return id
}
