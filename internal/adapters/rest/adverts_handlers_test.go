package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

type stubReadAdvertsUC struct {
	adverts []domain.Advert
	missed  int
	err     error

	gotPage domain.PageRequest
}

func (s *stubReadAdvertsUC) Execute(_ context.Context, _ uuid.UUID, page domain.PageRequest) ([]domain.Advert, int, error) {
	s.gotPage = page
	return s.adverts, s.missed, s.err
}

func authedRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/api/read-adverts", strings.NewReader(body))
	request.Header.Set("ACCESS-TOKEN", uuid.NewString())
	return request
}

func serveReadAdverts(t *testing.T, uc *stubReadAdvertsUC, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewAdvertHandler(uc, nil, nil)
	recorder := httptest.NewRecorder()
	AuthMiddleware(http.HandlerFunc(handler.ReadAdverts)).ServeHTTP(recorder, authedRequest(t, body))
	return recorder
}

func TestReadAdvertsHandler(t *testing.T) {
	uc := &stubReadAdvertsUC{
		adverts: []domain.Advert{{ID: 1, Title: "Kawalerka", Currency: "zl"}},
		missed:  4,
	}

	recorder := serveReadAdverts(t, uc, `{"Direction": 2, "AdvertId": 42, "LastViewId": 40}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if uc.gotPage.Direction != domain.DirectionNext || uc.gotPage.AdvertID == nil || *uc.gotPage.AdvertID != 42 {
		t.Fatalf("page = %+v, want Direction next with anchor 42", uc.gotPage)
	}

	var envelope struct {
		Data   []advertResponse `json:"data"`
		Missed *int             `json:"missed"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if envelope.Missed == nil || *envelope.Missed != 4 {
		t.Fatalf("missed = %v, want 4", envelope.Missed)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Title != "Kawalerka" {
		t.Fatalf("data = %+v", envelope.Data)
	}
}

func TestReadAdvertsHandlerRejectsBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"direction missing", `{"AdvertId": 42}`},
		{"direction out of range", `{"Direction": 9}`},
		{"not json", `direction=2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serveReadAdverts(t, &stubReadAdvertsUC{}, tt.body)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", recorder.Code)
			}
		})
	}
}

func TestReadAdvertsHandlerUpstreamFailure(t *testing.T) {
	uc := &stubReadAdvertsUC{err: domain.ErrUpstreamTimeout}

	recorder := serveReadAdverts(t, uc, `{"Direction": 3}`)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Dependent service is unavailable") {
		t.Fatalf("body %q misses unavailability message", recorder.Body.String())
	}
}
