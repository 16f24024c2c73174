package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/Sakib928/synaps-server/internal/logger"
)

func newTestClient(baseURL string) Client {
	return Client{
		Client:        &http.Client{Timeout: 5 * time.Second},
		StripeKey:     "sk_test_abc",
		StripeBaseURL: baseURL,
		Logger:        logpkg.NewLogger(logpkg.LevelOff, io.Discard),
	}
}

func TestPaymentIntentCreate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_xyz","amount":1999,"currency":"usd","status":"requires_payment_method"}`))
	}))
	defer ts.Close()

	pi, err := newTestClient(ts.URL).PaymentIntentCreate(context.Background(), 1999, "usd", []string{"card"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", pi.ID)
	assert.Equal(t, "pi_123_secret_xyz", pi.ClientSecret)
	assert.Equal(t, int64(1999), pi.Amount)
	assert.Equal(t, "requires_payment_method", pi.Status)
}

func TestPaymentIntentCreateErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key provided"}}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).PaymentIntentCreate(context.Background(), 500, "usd", []string{"card"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestPaymentIntentCreateBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).PaymentIntentCreate(context.Background(), 500, "usd", []string{"card"})
	require.Error(t, err)
}
