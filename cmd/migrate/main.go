package main

import (
	"log"
	"os"

	"petgroom-be/internal/model"
	"petgroom-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do perfectly)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'pet_size') THEN CREATE TYPE pet_size AS ENUM ('small', 'medium', 'large', 'extra_large'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'scheduling_status') THEN CREATE TYPE scheduling_status AS ENUM ('scheduled', 'confirmed', 'in_progress', 'completed', 'cancelled'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Client{},
		&model.Pet{},
		&model.Package{},
		&model.PackagePrice{},
		&model.ClientSubscription{},
		&model.Scheduling{},
		&model.SchedulingPet{},
		&model.SystemLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Constraints GORM tags cannot express
	log.Println("Step 3: Creating partial indexes...")

	postMigrationSQL := []string{
		// One active subscription per pet
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_active_subscription_per_pet
		 ON client_subscriptions (client_id, pet_id)
		 WHERE is_active = true;`,

		// One price row per (package, recurrence) among active prices
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_active_price_per_recurrence
		 ON package_prices (package_id, recurrence)
		 WHERE is_active = true;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
