package handler

import (
	"net/http"
	"testing"
)

func TestProgressHandler_SaveTwiceThenGet_Scenario(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]interface{}{
		"userId":         "u1",
		"storyId":        "s1",
		"lastBlockIndex": 3,
	}

	rr := doJSON(t, router, http.MethodPost, "/progress", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if taps := decodeResponse(t, rr)["tapCountForThisReader"]; taps != float64(1) {
		t.Fatalf("expected 1 tap, got %v", taps)
	}

	rr = doJSON(t, router, http.MethodPost, "/progress", body)
	if taps := decodeResponse(t, rr)["tapCountForThisReader"]; taps != float64(2) {
		t.Fatalf("expected 2 taps, got %v", taps)
	}

	rr = doJSON(t, router, http.MethodGet, "/progress/s1?userId=u1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if idx := decodeResponse(t, rr)["lastBlockIndex"]; idx != float64(3) {
		t.Fatalf("expected lastBlockIndex 3, got %v", idx)
	}
}

func TestProgressHandler_Save_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []map[string]interface{}{
		{"storyId": "s1", "lastBlockIndex": 0},
		{"userId": "u1", "lastBlockIndex": 0},
	} {
		rr := doJSON(t, router, http.MethodPost, "/progress", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rr.Code, rr.Body.String())
		}
	}
}

func TestProgressHandler_Get_Sentinel(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/progress/s_unknown01?userId=u1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if idx := decodeResponse(t, rr)["lastBlockIndex"]; idx != float64(-1) {
		t.Fatalf("expected -1 sentinel, got %v", idx)
	}
}

func TestProgressHandler_Get_MissingUserID(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/progress/s1", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestProgressHandler_OutOfRangeIndexAccepted(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/progress", map[string]interface{}{
		"userId":         "u1",
		"storyId":        "s1",
		"lastBlockIndex": 9999,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodGet, "/progress/s1?userId=u1", nil)
	if idx := decodeResponse(t, rr)["lastBlockIndex"]; idx != float64(9999) {
		t.Fatalf("expected stored out-of-range index, got %v", idx)
	}
}
