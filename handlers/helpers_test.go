package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/turf-kings/models"
	"github.com/Dosada05/turf-kings/services"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", models.NewValidationError("scorer", "unknown"), http.StatusUnprocessableEntity},
		{"wrapped validation", fmt.Errorf("restore: %w", models.NewValidationError("", "bad")), http.StatusUnprocessableEntity},
		{"consistency", models.NewConsistencyError("stale match"), http.StatusConflict},
		{"session already active", services.ErrSessionAlreadyActive, http.StatusConflict},
		{"no session", services.ErrNoActiveSession, http.StatusNotFound},
		{"bad code", services.ErrInvalidAccessCode, http.StatusUnauthorized},
		{"forbidden", services.ErrForbiddenOperation, http.StatusForbidden},
		{"no storage", services.ErrBackupStorageDisabled, http.StatusServiceUnavailable},
		{"save failed", fmt.Errorf("%w: disk full", services.ErrSnapshotSaveFailed), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceErrorToHTTP(rr, req, tt.err)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if _, ok := body["error"]; !ok {
				t.Errorf("expected error envelope, got %v", body)
			}
		})
	}
}

func TestMapServiceErrorToHTTP_ValidationFieldBody(t *testing.T) {
	rr := httptest.NewRecorder()
	mapServiceErrorToHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil), models.NewValidationError("assist", "%q cannot assist", "Enoch"))

	var body struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Error["assist"] != `"Enoch" cannot assist` {
		t.Errorf("unexpected body %v", body.Error)
	}
}

func TestReadJSON(t *testing.T) {
	type input struct {
		Code string `json:"code"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"code":"x"}`, ""},
		{"empty", ``, "body must not be empty"},
		{"malformed", `{"code":`, "badly-formed"},
		{"unknown field", `{"code":"x","extra":1}`, "unknown key"},
		{"wrong type", `{"code":1}`, "incorrect JSON type"},
		{"two values", `{"code":"x"}{"code":"y"}`, "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst input

			err := readJSON(httptest.NewRecorder(), req, &dst)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
