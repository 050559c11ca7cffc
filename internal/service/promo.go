package service

import (
	"context"
	"strings"
	"time"

	"github.com/bookit/experience-booking/internal/model"
	"github.com/bookit/experience-booking/internal/repository"
)

// PromoStore resolves a canonical uppercase code to a promo definition.
type PromoStore interface {
	GetByCode(ctx context.Context, code string) (*model.Promo, error)
}

// PromoService validates promo codes.  Validation is a pure read with no side
// effects: it never consumes or mutates a promo, so it is safe to call
// repeatedly and independently of any booking attempt.
type PromoService struct {
	store PromoStore
}

// NewPromoService returns a PromoService backed by the given store.
func NewPromoService(store PromoStore) *PromoService {
	return &PromoService{store: store}
}

// Validate canonicalizes the code (trim and uppercase, so matching is
// case-insensitive) and checks existence and expiry.  It returns the promo on
// success, repository.ErrPromoNotFound for blank or unknown codes, and
// ErrPromoExpired when expires_at is strictly in the past.
func (s *PromoService) Validate(ctx context.Context, code string) (*model.Promo, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	if canonical == "" {
		return nil, repository.ErrPromoNotFound
	}
	p, err := s.store.GetByCode(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(time.Now()) {
		return nil, ErrPromoExpired
	}
	return p, nil
}
