package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookit/experience-booking/internal/mailer"
)

type fakeMailer struct {
	sent []mailer.Confirmation
	err  error
}

func (f *fakeMailer) SendConfirmation(_ context.Context, c mailer.Confirmation) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, c)
	return nil
}

func TestHandleMessage(t *testing.T) {
	ev := BookingConfirmedEvent{
		EventID:       "e-1",
		RefID:         "REF23XYZ",
		Experience:    "Kayaking",
		Date:          "2025-10-22",
		Time:          "09:00",
		Qty:           2,
		Total:         2120,
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	m := &fakeMailer{}
	require.NoError(t, handleMessage(body, m))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "asha@example.com", m.sent[0].To)
	assert.Equal(t, "REF23XYZ", m.sent[0].RefID)
	assert.Equal(t, int64(2120), m.sent[0].Total)
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
	m := &fakeMailer{}
	assert.Error(t, handleMessage([]byte("not json"), m))
	assert.Empty(t, m.sent)
}

func TestHandleMessagePropagatesMailerFailure(t *testing.T) {
	body, err := json.Marshal(BookingConfirmedEvent{RefID: "R", CustomerEmail: "a@b.c"})
	require.NoError(t, err)

	m := &fakeMailer{err: errors.New("api down")}
	assert.Error(t, handleMessage(body, m))
}
