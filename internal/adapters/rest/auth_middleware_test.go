package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"valid token", userID.String(), http.StatusOK},
		{"uppercase token", strings.ToUpper(userID.String()), http.StatusOK},
		{"missing token", "", http.StatusUnauthorized},
		{"malformed token", "not-a-guid", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := UserIDFromContext(r.Context())
				if !ok {
					t.Fatal("user id missing from context behind the middleware")
				}
				gotUserID = id
			})

			request := httptest.NewRequest(http.MethodPost, "/api/read-adverts", nil)
			if tt.token != "" {
				request.Header.Set("ACCESS-TOKEN", tt.token)
			}
			recorder := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(recorder, request)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotUserID != userID {
				t.Fatalf("user id = %v, want %v", gotUserID, userID)
			}
			if tt.wantStatus == http.StatusUnauthorized && !strings.Contains(recorder.Body.String(), "Access token required") {
				t.Fatalf("body %q misses rejection message", recorder.Body.String())
			}
		})
	}
}

func TestPublicAuthMiddleware(t *testing.T) {
	publicToken := "d2f1c7a0-0b8e-4f7e-9a44-1f0e6a3b5c21"

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"exact token", publicToken, http.StatusOK},
		// GUID сравнивается без учета регистра.
		{"uppercase token", strings.ToUpper(publicToken), http.StatusOK},
		{"wrong token", uuid.NewString(), http.StatusUnauthorized},
		{"missing token", "", http.StatusUnauthorized},
		{"malformed token", "nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			request := httptest.NewRequest(http.MethodPost, "/public/db", nil)
			if tt.token != "" {
				request.Header.Set("PUBLIC-TOKEN", tt.token)
			}
			recorder := httptest.NewRecorder()

			PublicAuthMiddleware(publicToken)(next).ServeHTTP(recorder, request)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
