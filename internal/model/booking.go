package model

import "time"

// AppliedPromo is the point-in-time snapshot of a discount captured when a
// booking was priced.  It is a value copy, not a reference to the promos
// table: later edits or expiry of the code must not change what a historical
// booking paid.
type AppliedPromo struct {
	Code     string // promo code as applied
	Discount int64  // discount amount in whole currency units
}

// Booking is a confirmed, immutable record of a successful capacity decrement
// plus its computed price.  RefID is the short user-facing reference, unique
// across all bookings.  ExperienceTitle is snapshotted for display so the
// booking stays renderable even if the experience later changes.
type Booking struct {
	ID              uint64        // bookings.id
	RefID           string        // bookings.ref_id, unique
	ExperienceID    uint64        // bookings.experience_id
	ExperienceTitle string        // bookings.experience_title
	Date            string        // bookings.slot_date, formatted YYYY-MM-DD
	Time            string        // bookings.slot_time, formatted HH:MM
	Qty             int64         // bookings.qty, units reserved
	Name            string        // bookings.customer_name
	Email           string        // bookings.customer_email
	Subtotal        int64         // bookings.subtotal
	Taxes           int64         // bookings.taxes
	Total           int64         // bookings.total
	Promo           *AppliedPromo // bookings.promo_code / promo_discount (nullable)
	CreatedAt       time.Time     // bookings.created_at
}
