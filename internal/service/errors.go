// Package service contains the booking engine and promo validation logic.
// Handlers translate the error values defined here into the HTTP contract.
package service

import "errors"

// ErrCapacityUnavailable means the atomic reserve found no matching slot or
// not enough remaining capacity.  Retrying the same slot and quantity will
// keep failing until availability is re-checked; capacity is never restored
// by this service.  Handlers translate this into HTTP 409.
var ErrCapacityUnavailable = errors.New("capacity unavailable")

// ErrPromoExpired means the code exists but its expiry instant has passed.
var ErrPromoExpired = errors.New("promo expired")

// ValidationError reports a malformed booking request.  The reason is safe to
// show to the end user.  Handlers translate this into HTTP 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
