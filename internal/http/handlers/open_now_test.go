package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type stubOpenNowLister struct {
	ids []uuid.UUID
	err error
}

func (s *stubOpenNowLister) OpenNowIDs(now time.Time) ([]uuid.UUID, error) {
	return s.ids, s.err
}

func TestOpenNowListResponse(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	handler := NewOpenNowHandler(&stubOpenNowLister{ids: []uuid.UUID{idA, idB}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/open-now", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d", rec.Code, http.StatusOK)
	}

	var body struct {
		OpenSpotIDs []string `json:"openSpotIds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.OpenSpotIDs) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(body.OpenSpotIDs))
	}
	if body.OpenSpotIDs[0] != idA.String() || body.OpenSpotIDs[1] != idB.String() {
		t.Errorf("ids out of order: %v", body.OpenSpotIDs)
	}
}

func TestOpenNowListEmpty(t *testing.T) {
	handler := NewOpenNowHandler(&stubOpenNowLister{ids: []uuid.UUID{}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/open-now", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d", rec.Code, http.StatusOK)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Empty result must still serialize as an array, not null.
	if string(body["openSpotIds"]) != "[]" {
		t.Errorf(`openSpotIds = %s, expected []`, body["openSpotIds"])
	}
}

func TestOpenNowListUpstreamFailure(t *testing.T) {
	handler := NewOpenNowHandler(&stubOpenNowLister{err: errors.New("connection refused")})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/spots/open-now", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, expected %d", rec.Code, http.StatusInternalServerError)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error message in response body")
	}
}
