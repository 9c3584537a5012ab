package email_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/amantech/internal/config"
	"github.com/nfrund/amantech/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := email.New(&config.Config{EmailProvider: email.ProviderNone})
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = email.New(&config.Config{EmailProvider: email.ProviderLog})
	require.NoError(t, err)
	assert.IsType(t, &email.LogSender{}, s)

	_, err = email.New(&config.Config{EmailProvider: email.ProviderResend})
	assert.ErrorContains(t, err, "EMAIL_API_KEY")

	s, err = email.New(&config.Config{EmailProvider: email.ProviderResend, EmailAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &email.ResendSender{}, s)

	_, err = email.New(&config.Config{EmailProvider: "pigeon"})
	assert.ErrorContains(t, err, "unknown email provider")
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := email.NewLogSender("site@amantech.example", slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.Send(context.Background(), email.Message{To: "sales@amantech.example", Subject: "New inquiry"}))
	assert.Contains(t, buf.String(), "Email sent (logged)")
	assert.Contains(t, buf.String(), "to=sales@amantech.example")
}

func TestResendSender(t *testing.T) {
	var got map[string]string
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := email.NewResendSender("key-123", "", email.WithEndpoint(srv.URL), email.WithHTTPClient(srv.Client()))
	err := s.Send(context.Background(), email.Message{To: "sales@amantech.example", Subject: "Hi", HTML: "<p>x</p>"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer key-123", auth)
	assert.Equal(t, "sales@amantech.example", got["to"])
	assert.Equal(t, "<p>x</p>", got["html"])
	assert.Contains(t, got["from"], "Amantech")
}

func TestResendSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	s := email.NewResendSender("k", "a@b.c", email.WithEndpoint(srv.URL))
	err := s.Send(context.Background(), email.Message{To: "x@y.z"})
	assert.ErrorContains(t, err, "status 422")
}
