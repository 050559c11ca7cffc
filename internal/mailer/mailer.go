// Package mailer delivers booking confirmation messages.  Delivery sits
// behind the Mailer interface so deployments can swap the transport; the
// shipped implementation posts to an HTTP mail API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Confirmation carries the fields rendered into a confirmation message.
type Confirmation struct {
	To         string
	RefID      string
	Experience string
	Date       string
	Time       string
	Qty        int64
	Total      int64
}

// Mailer sends one confirmation message.  Implementations are best-effort:
// they run off the booking critical path, and a failure is logged by the
// caller rather than propagated to the customer.
type Mailer interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

// HTTPMailer posts messages to a Resend-compatible HTTP mail API.
type HTTPMailer struct {
	APIKey   string
	From     string
	Endpoint string
	Client   *http.Client
}

// NewHTTPMailer returns an HTTPMailer with the production endpoint and a
// bounded request timeout.  An empty from address gets a usable default.
func NewHTTPMailer(apiKey, from string) *HTTPMailer {
	if from == "" {
		from = "BookIt <onboarding@resend.dev>"
	}
	return &HTTPMailer{
		APIKey:   apiKey,
		From:     from,
		Endpoint: "https://api.resend.com/emails",
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SendConfirmation renders and posts the confirmation e-mail.  Non-2xx
// responses are returned as errors with a truncated body for diagnostics.
func (m *HTTPMailer) SendConfirmation(ctx context.Context, c Confirmation) error {
	if m.APIKey == "" {
		return errors.New("mailer: api key not configured")
	}

	html := fmt.Sprintf(`<div style="font-family:system-ui,sans-serif;color:#111">
  <h2 style="margin:0 0 12px">Booking Confirmed</h2>
  <p style="margin:4px 0"><b>Reference ID:</b> %s</p>
  <p style="margin:4px 0"><b>Experience:</b> %s</p>
  <p style="margin:4px 0"><b>Date &amp; Time:</b> %s %s</p>
  <p style="margin:4px 0"><b>Quantity:</b> %d</p>
  <p style="margin:4px 0"><b>Total:</b> %d</p>
  <p style="margin:16px 0 0;color:#6b7280">Thanks for booking with us.</p>
</div>`, c.RefID, c.Experience, c.Date, c.Time, c.Qty, c.Total)

	payload, err := json.Marshal(map[string]any{
		"from":    m.From,
		"to":      c.To,
		"subject": fmt.Sprintf("Your booking is confirmed: %s", c.RefID),
		"html":    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailer: api returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
