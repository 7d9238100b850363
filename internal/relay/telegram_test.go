package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDeliver(t *testing.T) {
	var got relayMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewTelegramRelay(srv.URL, "-100123")
	err := r.Deliver(context.Background(), "USD\n14:30 [!!!] Core PCE\n")

	assert.Equal(t, nil, err)
	assert.Equal(t, "USD\n14:30 [!!!] Core PCE\n", got.Message)
	assert.Equal(t, "Markdown", got.ParseMode)
	assert.Equal(t, "-100123", got.ChatID)
}

func TestDeliverNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewTelegramRelay(srv.URL, "-100123")
	err := r.Deliver(context.Background(), "text")

	assert.NotEqual(t, nil, err)
}

func TestDeliverConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := NewTelegramRelay(srv.URL, "-100123")
	err := r.Deliver(context.Background(), "text")

	assert.NotEqual(t, nil, err)
}
