// Package queue defines the booking.confirmed event and its RabbitMQ
// publisher and consumer.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookit/experience-booking/internal/model"
)

// bookingQueueName is the durable queue carrying confirmation events.
const bookingQueueName = "booking.confirmed"

// BookingConfirmedEvent is published after a booking has been durably
// recorded.  It carries everything a consumer needs to notify the customer
// without querying the primary database.
type BookingConfirmedEvent struct {
	EventID       string `json:"event_id"`
	RefID         string `json:"ref_id"`
	Experience    string `json:"experience"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Qty           int64  `json:"qty"`
	Total         int64  `json:"total"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ConfirmedAt   string `json:"confirmed_at"`
}

// NewBookingConfirmedEvent builds an event from a recorded booking.  EventID
// is a fresh UUID so consumers can de-duplicate redelivered messages.
func NewBookingConfirmedEvent(b *model.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		EventID:       uuid.NewString(),
		RefID:         b.RefID,
		Experience:    b.ExperienceTitle,
		Date:          b.Date,
		Time:          b.Time,
		Qty:           b.Qty,
		Total:         b.Total,
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
