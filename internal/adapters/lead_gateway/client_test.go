package lead_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Сообщение подставляется вместо {text} уже экранированным под query.
func TestDeliverSubstitutesMessage(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("text")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient()

	delivered, err := client.Deliver(context.Background(), server.URL+"/?text={text}", "Phone: +48 123")
	if err != nil {
		t.Fatalf("Deliver returned error: %v", err)
	}
	if !delivered {
		t.Fatal("delivered = false, want true for 200 with body")
	}
	if gotQuery != "Phone: +48 123" {
		t.Fatalf("partner received %q, want original message", gotQuery)
	}
}

// 200 с пустым телом - не подтверждение.
func TestDeliverEmptyBodyMeansNotConfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()

	delivered, err := client.Deliver(context.Background(), server.URL+"/?text={text}", "hello")
	if err != nil {
		t.Fatalf("Deliver returned error: %v", err)
	}
	if delivered {
		t.Fatal("delivered = true, want false for empty body")
	}
}

func TestDeliverBadStatusMeansNotConfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "partner error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient()

	delivered, err := client.Deliver(context.Background(), server.URL+"/?text={text}", "hello")
	if err != nil {
		t.Fatalf("Deliver returned error: %v", err)
	}
	if delivered {
		t.Fatal("delivered = true, want false for non-200 status")
	}
}

func TestDeliverTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient()

	delivered, err := client.Deliver(context.Background(), server.URL+"/?text={text}", "hello")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if delivered {
		t.Fatal("delivered = true, want false on transport error")
	}
}
