package model

import "time"

// Discount kinds a promo may carry.
const (
	PromoPercentage = "percentage"
	PromoFlat       = "flat"
)

// Promo is a named discount rule.  Codes are canonicalized to uppercase and
// matched case-insensitively.  A nil ExpiresAt means the code never expires.
// The booking core only ever reads promos; administration happens elsewhere.
type Promo struct {
	ID        uint64     // promos.id
	Code      string     // promos.code, uppercase
	Type      string     // promos.promo_type: PromoPercentage or PromoFlat
	Value     int64      // promos.value: percent for percentage, units for flat
	ExpiresAt *time.Time // promos.expires_at (nullable)
	CreatedAt time.Time  // promos.created_at
}
