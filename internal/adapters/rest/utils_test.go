package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mobile-api-service/internal/core/domain"
)

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return envelope
}

func TestRespondWithEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	RespondWithEnvelope(recorder, http.StatusOK, map[string]string{"key": "value"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	envelope := decodeEnvelope(t, recorder)

	// HTTP-статус и statusCode в конверте всегда совпадают.
	if string(envelope["statusCode"]) != "200" {
		t.Fatalf("statusCode = %s, want 200", envelope["statusCode"])
	}
	if string(envelope["statusMessage"]) != "null" {
		t.Fatalf("statusMessage = %s, want null on success", envelope["statusMessage"])
	}
	if _, present := envelope["missed"]; present {
		t.Fatal("missed must be absent outside adverts responses")
	}

	var timestamp int64
	if err := json.Unmarshal(envelope["timestamp"], &timestamp); err != nil {
		t.Fatalf("timestamp is not a number: %s", envelope["timestamp"])
	}
	if now := time.Now().UnixMilli(); timestamp > now || timestamp < now-5000 {
		t.Fatalf("timestamp = %d, want recent epoch millis", timestamp)
	}
}

func TestRespondWithAdvertsEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	RespondWithAdvertsEnvelope(recorder, http.StatusOK, []int{}, 0)

	envelope := decodeEnvelope(t, recorder)

	// missed сериализуется и при нулевом значении.
	if string(envelope["missed"]) != "0" {
		t.Fatalf("missed = %s, want 0", envelope["missed"])
	}
}

func TestWriteEnvelopeError(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteEnvelopeError(recorder, http.StatusBadRequest, "Something is wrong")

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}

	envelope := decodeEnvelope(t, recorder)
	if string(envelope["data"]) != "null" {
		t.Fatalf("data = %s, want null for errors", envelope["data"])
	}
	if string(envelope["statusMessage"]) != `"Something is wrong"` {
		t.Fatalf("statusMessage = %s", envelope["statusMessage"])
	}
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"validation", domain.NewValidationError("Region ID is required"), http.StatusBadRequest, "Region ID is required"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"upstream timeout", domain.ErrUpstreamTimeout, http.StatusServiceUnavailable, "Dependent service is unavailable. Please try again later."},
		{"upstream unavailable", domain.ErrUpstreamUnavailable, http.StatusServiceUnavailable, "Dependent service is unavailable. Please try again later."},
		{"wrapped upstream", errors.New("wrapped: " + domain.ErrUpstreamTimeout.Error()), http.StatusInternalServerError, "Internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteDomainError(recorder, tt.err)

			if recorder.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", recorder.Code, tt.wantCode)
			}
			if !strings.Contains(recorder.Body.String(), tt.wantMessage) {
				t.Fatalf("body %q misses %q", recorder.Body.String(), tt.wantMessage)
			}
		})
	}
}
