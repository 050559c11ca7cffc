package repository

import (
	"context"
	"database/sql"

	"github.com/bookit/experience-booking/internal/model"
)

// ExperienceRepo provides read access to the experience catalog and owns the
// single write path for slot capacity: the conditional decrement in
// ReserveSlot.  No other code may write to the slots table.
type ExperienceRepo struct {
	db *sql.DB
}

// NewExperienceRepo returns an ExperienceRepo bound to the given database.
func NewExperienceRepo(db *sql.DB) *ExperienceRepo { return &ExperienceRepo{db: db} }

const selectExperience = `SELECT id, title, slug, price_units, location, description, image_url, created_at FROM experiences`

// querier is satisfied by both *sql.DB and *sql.Tx so row scanning helpers
// can run inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListAll returns every experience without its slots, ordered by id.  Used by
// the catalog listing where slot detail would bloat the response.
func (r *ExperienceRepo) ListAll(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.db.QueryContext(ctx, selectExperience+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Experience
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Slug, &e.Price, &e.Location, &e.Description, &e.Image, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID loads one experience together with its slots and their current
// capacity.  Returns ErrExperienceNotFound when the id does not exist.
func (r *ExperienceRepo) GetByID(ctx context.Context, id uint64) (*model.Experience, error) {
	exp, err := scanExperience(r.db.QueryRowContext(ctx, selectExperience+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, err
	}
	exp.Slots, err = slotsByExperience(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// ReserveSlot atomically decrements the capacity of the slot identified by
// (experienceID, date, timeOfDay) by qty, provided the slot exists and holds
// at least qty remaining units.  The conditional UPDATE is the serialization
// point for concurrent bookings of the same slot: the database applies the
// check and the decrement under one row lock, so two racing requests can
// never both consume the last unit, and no request ever observes a capacity
// value that predates another request's applied decrement.
//
// On success the experience is read back within the same transaction and the
// returned snapshot reflects the post-decrement state.  When the slot is
// missing, the experience is unknown, or capacity is insufficient, the
// single unified ErrSlotUnavailable is returned and nothing is changed.
//
// ReserveSlot is not retry-safe: repeating a successful call decrements
// again.  Callers that hit an ambiguous failure must re-check availability
// instead of blindly retrying.
func (r *ExperienceRepo) ReserveSlot(ctx context.Context, experienceID uint64, date, timeOfDay string, qty int64) (*model.Experience, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE slots
		    SET capacity = capacity - ?
		  WHERE experience_id = ? AND slot_date = ? AND slot_time = ? AND capacity >= ?`,
		qty, experienceID, date, timeOfDay, qty,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrSlotUnavailable
	}

	exp, err := scanExperience(tx.QueryRowContext(ctx, selectExperience+` WHERE id = ?`, experienceID))
	if err != nil {
		return nil, err
	}
	exp.Slots, err = slotsByExperience(ctx, tx, experienceID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return exp, nil
}

func scanExperience(row *sql.Row) (*model.Experience, error) {
	var e model.Experience
	err := row.Scan(&e.ID, &e.Title, &e.Slug, &e.Price, &e.Location, &e.Description, &e.Image, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func slotsByExperience(ctx context.Context, q querier, experienceID uint64) ([]model.Slot, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, experience_id, DATE_FORMAT(slot_date, '%Y-%m-%d'), slot_time, capacity
		   FROM slots
		  WHERE experience_id = ?
		  ORDER BY slot_date, slot_time`,
		experienceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []model.Slot
	for rows.Next() {
		var s model.Slot
		if err := rows.Scan(&s.ID, &s.ExperienceID, &s.Date, &s.Time, &s.Capacity); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
