package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/bookit/experience-booking/internal/model"
	"github.com/bookit/experience-booking/internal/pricing"
	"github.com/bookit/experience-booking/internal/queue"
	"github.com/bookit/experience-booking/internal/repository"
)

// InventoryStore is the single write path for slot capacity.  ReserveSlot
// must check and decrement atomically and return the post-decrement
// experience snapshot; see repository.ExperienceRepo.ReserveSlot.
type InventoryStore interface {
	ReserveSlot(ctx context.Context, experienceID uint64, date, timeOfDay string, qty int64) (*model.Experience, error)
}

// PromoChecker resolves a promo code to a live promo definition.
type PromoChecker interface {
	Validate(ctx context.Context, code string) (*model.Promo, error)
}

// BookingLedger appends confirmed bookings.  Create returns
// repository.ErrDuplicateRef on a reference id collision.
type BookingLedger interface {
	Create(ctx context.Context, b *model.Booking) error
}

// EventPublisher delivers booking.confirmed events to downstream consumers.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// BookRequest carries one booking attempt.
type BookRequest struct {
	ExperienceID uint64 `json:"experience_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Qty          int64  `json:"qty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PromoCode    string `json:"promo_code"`
}

// BookResult is the confirmation summary returned on success.
type BookResult struct {
	RefID      string `json:"ref_id"`
	Total      int64  `json:"total"`
	Experience string `json:"experience"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Qty        int64  `json:"qty"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// maxRefAttempts bounds regeneration on reference id collisions.
const maxRefAttempts = 5

// ReservationService orchestrates a single booking attempt end to end:
// validate, resolve promo, atomically reserve capacity, price, record,
// notify.  Capacity is decremented at most once per attempt, and a booking is
// recorded if and only if the decrement succeeded.  Attempts are independent
// units of work with no cross-attempt locking; correctness under concurrency
// rides entirely on the inventory store's atomic conditional decrement.
type ReservationService struct {
	inventory InventoryStore
	promos    PromoChecker
	ledger    BookingLedger
	publisher EventPublisher
	calc      *pricing.Calculator
}

// NewReservationService wires the engine's collaborators.  publisher may be
// nil, in which case no events are emitted.
func NewReservationService(inventory InventoryStore, promos PromoChecker, ledger BookingLedger, publisher EventPublisher, calc *pricing.Calculator) *ReservationService {
	return &ReservationService{
		inventory: inventory,
		promos:    promos,
		ledger:    ledger,
		publisher: publisher,
		calc:      calc,
	}
}

// Book runs one booking attempt.  It returns a *ValidationError for malformed
// input, ErrCapacityUnavailable when the slot cannot satisfy the quantity,
// and an opaque error for anything unexpected; no storage detail leaks to
// the caller.
func (s *ReservationService) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// An invalid or expired promo never fails the booking: the interactive
	// flow surfaces promo errors before checkout, and a stale code at this
	// point is simply not applied.
	var promo *model.Promo
	if code := strings.TrimSpace(req.PromoCode); code != "" {
		p, err := s.promos.Validate(ctx, code)
		if err != nil {
			log.Printf("booking: promo %q not applied: %v", code, err)
		} else {
			promo = p
		}
	}

	exp, err := s.inventory.ReserveSlot(ctx, req.ExperienceID, req.Date, req.Time, req.Qty)
	if err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return nil, ErrCapacityUnavailable
		}
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	// From here on capacity has been consumed.  The unit price comes from the
	// post-decrement snapshot, not from an earlier read.
	breakdown, err := s.calc.Quote(exp.Price, req.Qty, promo)
	if err != nil {
		s.logInconsistency(req, err)
		return nil, fmt.Errorf("price booking: %w", err)
	}

	booking := &model.Booking{
		ExperienceID:    exp.ID,
		ExperienceTitle: exp.Title,
		Date:            req.Date,
		Time:            req.Time,
		Qty:             req.Qty,
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Subtotal:        breakdown.Subtotal,
		Taxes:           breakdown.Taxes,
		Total:           breakdown.Total,
		Promo:           breakdown.Promo,
	}

	if err := s.record(ctx, booking); err != nil {
		// Inventory and ledger now disagree.  Deliberately no compensating
		// increment: a second uncoordinated mutation could mask why the
		// record failed.  Reconciliation is an operational concern.
		s.logInconsistency(req, err)
		return nil, fmt.Errorf("record booking: %w", err)
	}

	if s.publisher != nil {
		// Notification is delegated; a publish failure must never undo or
		// fail the already-committed booking.
		if err := s.publisher.PublishBookingConfirmed(ctx, queue.NewBookingConfirmedEvent(booking)); err != nil {
			log.Printf("booking: confirmation event for %s not published: %v", booking.RefID, err)
		}
	}

	return &BookResult{
		RefID:      booking.RefID,
		Total:      booking.Total,
		Experience: booking.ExperienceTitle,
		Date:       booking.Date,
		Time:       booking.Time,
		Qty:        booking.Qty,
	}, nil
}

// record generates a reference id and appends the booking, regenerating on id
// collisions up to maxRefAttempts times.
func (s *ReservationService) record(ctx context.Context, b *model.Booking) error {
	var lastErr error
	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		ref, err := NewRefID()
		if err != nil {
			return err
		}
		b.RefID = ref
		err = s.ledger.Create(ctx, b)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateRef) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("reference id collisions exhausted: %w", lastErr)
}

// logInconsistency flags the one state where inventory and ledger disagree:
// capacity was decremented but no booking record exists.  Operators watch for
// this line.
func (s *ReservationService) logInconsistency(req BookRequest, err error) {
	log.Printf("SEVERE: capacity decremented without booking record experience=%d date=%s time=%s qty=%d: %v",
		req.ExperienceID, req.Date, req.Time, req.Qty, err)
}

func validateRequest(req BookRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Reason: "name and email are required"}
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return &ValidationError{Reason: "invalid email format"}
	}
	if req.ExperienceID == 0 || req.Date == "" || req.Time == "" || req.Qty == 0 {
		return &ValidationError{Reason: "experience, date, time, and quantity are required"}
	}
	if req.Qty < 1 {
		return &ValidationError{Reason: "quantity must be at least 1"}
	}
	return nil
}
