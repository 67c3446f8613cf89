package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mithaighar/sweetshop/config"
	"github.com/mithaighar/sweetshop/pkg/helpers"
)

// Standalone seeder: ensures the admin account exists and fills an empty
// inventory with sample sweets. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (username) DO UPDATE SET is_admin = TRUE
		RETURNING id
	`, cfg.AdminUsername, cfg.AdminEmail, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("admin ensured: id=%d username=%s\n", id, cfg.AdminUsername)

	var sweets int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sweets`).Scan(&sweets); err != nil {
		log.Fatalf("failed to count sweets: %v", err)
	}
	if sweets > 0 {
		fmt.Printf("inventory already has %d sweets, skipping\n", sweets)
		return
	}

	samples := []struct {
		name, category, description string
		price                       float64
		quantity                    int
	}{
		{"Kaju Katli", "Dry Sweet", "Premium cashew based sweet", 500, 8},
		{"Ladoo", "Traditional", "Classic besan ladoo", 100, 0},
		{"Gulab Jamun", "Syrup Based", "Soft milk solid balls in sugar syrup", 150, 20},
		{"Rasgulla", "Syrup Based", "Spongy cottage cheese balls", 120, 15},
		{"Barfi", "Dry Sweet", "Traditional milk fudge", 300, 10},
	}
	for _, s := range samples {
		if _, err := db.Exec(`
			INSERT INTO sweets (name, category, price, quantity, description)
			VALUES ($1, $2, $3, $4, $5)
		`, s.name, s.category, s.price, s.quantity, s.description); err != nil {
			log.Fatalf("failed to seed sweet %q: %v", s.name, err)
		}
	}
	fmt.Printf("seeded %d sample sweets\n", len(samples))
}
