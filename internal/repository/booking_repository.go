package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/bookit/experience-booking/internal/model"
)

// mysqlDupEntry is the MySQL error number for a unique key violation.
const mysqlDupEntry = 1062

// BookingRepo is the append-only ledger of confirmed bookings.  Rows are
// inserted exactly once and never updated or deleted by this service.  The
// unique index on ref_id enforces reference uniqueness; a violated insert
// surfaces as ErrDuplicateRef so the caller can regenerate and retry.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create appends a booking.  The promo snapshot columns stay NULL when no
// discount was applied.  On success the generated row id is written back to
// b.ID.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(ref_id, experience_id, experience_title, slot_date, slot_time, qty,
		 customer_name, customer_email, subtotal, taxes, total, promo_code, promo_discount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var promoCode sql.NullString
	var promoDiscount sql.NullInt64
	if b.Promo != nil {
		promoCode = sql.NullString{String: b.Promo.Code, Valid: true}
		promoDiscount = sql.NullInt64{Int64: b.Promo.Discount, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, q,
		b.RefID, b.ExperienceID, b.ExperienceTitle, b.Date, b.Time, b.Qty,
		b.Name, b.Email, b.Subtotal, b.Taxes, b.Total, promoCode, promoDiscount,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return ErrDuplicateRef
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}
