// Command seed creates the schema and loads the sample catalog and promo
// codes used in development.  Existing bookings are preserved; experiences,
// slots and promos are wiped and reloaded.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/bookit/experience-booking/internal/config"
	"github.com/bookit/experience-booking/internal/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS experiences (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		price_units BIGINT NOT NULL,
		location VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		image_url VARCHAR(512) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_experience_slug (slug),
		CONSTRAINT chk_price CHECK (price_units >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS slots (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		experience_id BIGINT UNSIGNED NOT NULL,
		slot_date DATE NOT NULL,
		slot_time CHAR(5) NOT NULL,
		capacity BIGINT NOT NULL,
		UNIQUE KEY uq_slot (experience_id, slot_date, slot_time),
		CONSTRAINT fk_slot_experience FOREIGN KEY (experience_id)
			REFERENCES experiences(id) ON DELETE CASCADE,
		CONSTRAINT chk_capacity CHECK (capacity >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS promos (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(64) NOT NULL,
		promo_type ENUM('percentage','flat') NOT NULL,
		value BIGINT NOT NULL,
		expires_at DATETIME NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_promo_code (code),
		CONSTRAINT chk_promo_value CHECK (value >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		ref_id VARCHAR(16) NOT NULL,
		experience_id BIGINT UNSIGNED NOT NULL,
		experience_title VARCHAR(255) NOT NULL,
		slot_date DATE NOT NULL,
		slot_time CHAR(5) NOT NULL,
		qty BIGINT NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		subtotal BIGINT NOT NULL,
		taxes BIGINT NOT NULL,
		total BIGINT NOT NULL,
		promo_code VARCHAR(64) NULL,
		promo_discount BIGINT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_booking_ref (ref_id)
	)`,
}

type seedExperience struct {
	title       string
	slug        string
	price       int64
	location    string
	description string
	image       string
}

var experiences = []seedExperience{
	{"Kayaking", "kayaking-udupi", 999, "Udupi",
		"Curated small-group experience. Certified guide. Safety first with gear included.",
		"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=500&h=300&fit=crop"},
	{"Nandi Hills Sunrise", "nandi-hills-sunrise", 899, "Bangalore",
		"Experience the breathtaking sunrise from Nandi Hills with panoramic views.",
		"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=500&h=300&fit=crop"},
	{"Coffee Trail", "coffee-trail-coorg", 1299, "Coorg",
		"Explore the aromatic coffee plantations and learn about coffee cultivation.",
		"https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=500&h=300&fit=crop"},
	{"Boat Cruise", "boat-cruise-sunderban", 1599, "Sunderban",
		"Cruise through the mangrove forests and spot wildlife.",
		"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=500&h=300&fit=crop"},
	{"Bunjee Jumping", "bunjee-jumping-manali", 2499, "Manali",
		"Experience the ultimate adrenaline rush with professional bunjee jumping.",
		"https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500&h=300&fit=crop"},
	{"Trekking Adventure", "trekking-adventure-himachal", 1899, "Himachal Pradesh",
		"Explore scenic mountain trails and enjoy nature at its best.",
		"https://images.unsplash.com/photo-1551632811-561732d1e306?w=500&h=300&fit=crop"},
	{"Wildlife Safari", "wildlife-safari-ranthambore", 2199, "Ranthambore",
		"Spot tigers and other wildlife in their natural habitat.",
		"https://images.unsplash.com/photo-1544966503-7cc4ac81b4a4?w=500&h=300&fit=crop"},
	{"Desert Camping", "desert-camping-rajasthan", 1799, "Rajasthan",
		"Experience the magic of desert nights under the stars.",
		"https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=500&h=300&fit=crop"},
}

// Daily time slots and their starting capacity for every experience.
var timeSlots = []struct {
	time     string
	capacity int64
}{
	{"07:00", 4},
	{"09:00", 2},
	{"11:00", 5},
	{"13:00", 3},
	{"15:00", 3},
	{"17:00", 2},
}

const seedDays = 30

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("create schema: %v", err)
		}
	}

	for _, stmt := range []string{`DELETE FROM slots`, `DELETE FROM experiences`, `DELETE FROM promos`} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("clear tables: %v", err)
		}
	}

	if err := seedExperiences(ctx, db); err != nil {
		log.Fatalf("seed experiences: %v", err)
	}
	if err := seedPromos(ctx, db); err != nil {
		log.Fatalf("seed promos: %v", err)
	}

	log.Printf("seeded %d experiences with %d days of slots each", len(experiences), seedDays)
	log.Println("available promo codes: SAVE10, FLAT100, WELCOME20")
}

func seedExperiences(ctx context.Context, db *sql.DB) error {
	today := time.Now().UTC()
	for _, e := range experiences {
		res, err := db.ExecContext(ctx,
			`INSERT INTO experiences (title, slug, price_units, location, description, image_url) VALUES (?, ?, ?, ?, ?, ?)`,
			e.title, e.slug, e.price, e.location, e.description, e.image,
		)
		if err != nil {
			return err
		}
		expID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for day := 0; day < seedDays; day++ {
			date := today.AddDate(0, 0, day).Format("2006-01-02")
			for _, ts := range timeSlots {
				if _, err := db.ExecContext(ctx,
					`INSERT INTO slots (experience_id, slot_date, slot_time, capacity) VALUES (?, ?, ?, ?)`,
					expID, date, ts.time, ts.capacity,
				); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedPromos(ctx context.Context, db *sql.DB) error {
	now := time.Now().UTC()
	promos := []struct {
		code      string
		promoType string
		value     int64
		expiresAt time.Time
	}{
		{"SAVE10", "percentage", 10, now.AddDate(0, 0, 30)},
		{"FLAT100", "flat", 100, now.AddDate(0, 0, 15)},
		{"WELCOME20", "percentage", 20, now.AddDate(0, 0, 7)},
	}
	for _, p := range promos {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO promos (code, promo_type, value, expires_at) VALUES (?, ?, ?, ?)`,
			p.code, p.promoType, p.value, p.expiresAt,
		); err != nil {
			return err
		}
	}
	return nil
}
