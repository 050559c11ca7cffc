// Package repository provides data access for experiences, slots, promos and
// bookings on top of MySQL.  Sentinel errors defined here let higher layers
// distinguish failure scenarios with errors.Is without inspecting SQL state.
package repository

import "errors"

// ErrExperienceNotFound is returned by catalog lookups when no experience
// with the requested id exists.  Handlers translate this into HTTP 404.
var ErrExperienceNotFound = errors.New("experience not found")

// ErrSlotUnavailable is returned by ReserveSlot when the requested slot does
// not exist or its remaining capacity is below the requested quantity.  The
// two cases are deliberately collapsed into one outcome: both deny the
// reservation, and the caller has no use for the distinction.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ErrPromoNotFound is returned when a promo code has no matching row.
var ErrPromoNotFound = errors.New("promo not found")

// ErrDuplicateRef is returned when inserting a booking whose reference id
// collides with an existing one.  Callers regenerate the id and retry.
var ErrDuplicateRef = errors.New("duplicate booking reference")
