package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookit/experience-booking/internal/mailer"
)

func confirmation() mailer.Confirmation {
	return mailer.Confirmation{
		To:         "asha@example.com",
		RefID:      "REF23XYZ",
		Experience: "Kayaking",
		Date:       "2025-10-22",
		Time:       "09:00",
		Qty:        2,
		Total:      2120,
	}
}

func TestSendConfirmation(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := &mailer.HTTPMailer{
		APIKey:   "test-key",
		From:     "BookIt <bookings@example.com>",
		Endpoint: srv.URL,
		Client:   &http.Client{Timeout: time.Second},
	}

	require.NoError(t, m.SendConfirmation(context.Background(), confirmation()))
	assert.Equal(t, "asha@example.com", got["to"])
	assert.Equal(t, "BookIt <bookings@example.com>", got["from"])
	assert.Contains(t, got["subject"], "REF23XYZ")
	html, _ := got["html"].(string)
	assert.Contains(t, html, "REF23XYZ")
	assert.Contains(t, html, "Kayaking")
	assert.Contains(t, html, "2025-10-22")
}

func TestSendConfirmationAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid recipient", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	m := &mailer.HTTPMailer{APIKey: "test-key", From: "a", Endpoint: srv.URL, Client: srv.Client()}
	err := m.SendConfirmation(context.Background(), confirmation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSendConfirmationWithoutAPIKey(t *testing.T) {
	m := mailer.NewHTTPMailer("", "")
	err := m.SendConfirmation(context.Background(), confirmation())
	assert.Error(t, err)
}
