package sendgrid_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/core/domain"
)

func TestSendAccepted(t *testing.T) {
	var gotAuth, gotPath string
	var gotPayload mailSendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	msg := domain.EmailMessage{To: "partner@example.com", Subject: "New Lead", PlainText: "lead text"}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotPath != "/v3/mail/send" {
		t.Fatalf("path = %q, want /v3/mail/send", gotPath)
	}
	if gotPayload.From.Email != constants.ContactEmail {
		t.Fatalf("from = %q, want contact email", gotPayload.From.Email)
	}
	if len(gotPayload.Personalizations) != 1 || gotPayload.Personalizations[0].To[0].Email != "partner@example.com" {
		t.Fatalf("personalizations = %+v", gotPayload.Personalizations)
	}
	if len(gotPayload.Content) != 1 || gotPayload.Content[0].Type != "text/plain" {
		t.Fatalf("content = %+v, want single text/plain part", gotPayload.Content)
	}
}

func TestSendAppendsHTMLPart(t *testing.T) {
	var gotPayload mailSendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	msg := domain.EmailMessage{To: "a@b.c", Subject: "s", PlainText: "plain", HTML: "<b>html</b>"}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if len(gotPayload.Content) != 2 || gotPayload.Content[1].Type != "text/html" {
		t.Fatalf("content = %+v, want text/html second part", gotPayload.Content)
	}
}

// Любой статус кроме 202 считается отказом провайдера.
func TestSendRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": ["bad key"]}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")

	err := client.Send(context.Background(), domain.EmailMessage{To: "a@b.c"})
	if err == nil {
		t.Fatal("expected error for non-202 status")
	}
}

func TestSendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key")

	if err := client.Send(context.Background(), domain.EmailMessage{To: "a@b.c"}); err == nil {
		t.Fatal("expected transport error")
	}
}
