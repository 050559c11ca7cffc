package model

import "time"

// Slot is one bookable (date, time) instance of an experience with a finite
// remaining capacity.  A slot is identified within its experience by the
// (date, time) pair; no two slots of the same experience share one.  Capacity
// never goes below zero and is only ever decreased, through the repository's
// atomic reserve operation.
//
// Dates and times are carried as strings in the same shape the API uses:
// "2006-01-02" for dates and "15:04" for times.
type Slot struct {
	ID           uint64 // slots.id
	ExperienceID uint64 // slots.experience_id
	Date         string // slots.slot_date, formatted YYYY-MM-DD
	Time         string // slots.slot_time, formatted HH:MM
	Capacity     int64  // slots.capacity, remaining bookable units
}

// Experience is a guided activity offered at scheduled slots.  Price is the
// per-unit price in whole currency units.  The booking core reads title and
// price and mutates slot capacity; every other field belongs to the catalog.
type Experience struct {
	ID          uint64    // experiences.id
	Title       string    // experiences.title
	Slug        string    // experiences.slug
	Price       int64     // experiences.price_units
	Location    string    // experiences.location
	Description string    // experiences.description
	Image       string    // experiences.image_url
	Slots       []Slot    // child rows of the slots table
	CreatedAt   time.Time // experiences.created_at
}
