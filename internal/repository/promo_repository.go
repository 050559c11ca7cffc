package repository

import (
	"context"
	"database/sql"

	"github.com/bookit/experience-booking/internal/model"
)

// PromoRepo reads promo codes.  The booking core never creates, updates or
// consumes promos; lifecycle management lives outside this service.
type PromoRepo struct {
	db *sql.DB
}

// NewPromoRepo returns a PromoRepo bound to the given database.
func NewPromoRepo(db *sql.DB) *PromoRepo { return &PromoRepo{db: db} }

// GetByCode looks up a promo by its canonical uppercase code.  Callers are
// expected to uppercase the input before calling; codes are stored uppercase.
// Returns ErrPromoNotFound when no row matches.
func (r *PromoRepo) GetByCode(ctx context.Context, code string) (*model.Promo, error) {
	const q = `SELECT id, code, promo_type, value, expires_at, created_at FROM promos WHERE code = ?`

	var p model.Promo
	var expires sql.NullTime
	err := r.db.QueryRowContext(ctx, q, code).Scan(&p.ID, &p.Code, &p.Type, &p.Value, &expires, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}
	if expires.Valid {
		t := expires.Time
		p.ExpiresAt = &t
	}
	return &p, nil
}
