package main

import (
	"log"
	"os"

	"petgroom-be/internal/model"
	"petgroom-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type packageSeed struct {
	Name        string
	Description string
	Prices      map[int]float64 // recurrence days -> price
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Demo Account & Package Catalog...")

	email := os.Getenv("SEED_USER_EMAIL")
	if email == "" {
		email = "demo@petgroom.local"
	}

	var owner model.User
	if err := db.Where("email = ?", email).First(&owner).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error: Failed to hash demo password:", err)
		}
		hashStr := string(hash)
		owner = model.User{
			FullName:     "Demo Groomer",
			Email:        email,
			PasswordHash: &hashStr,
		}
		if err := db.Create(&owner).Error; err != nil {
			log.Fatal("Error: Failed to create demo user:", err)
		}
		log.Printf("Created demo user: %s", email)
	} else {
		log.Printf("Demo user '%s' already exists, reusing...", email)
	}

	catalog := []packageSeed{
		{
			Name:        "Banho Simples",
			Description: "Bath, drying and brushing",
			Prices:      map[int]float64{7: 60, 15: 70, 30: 80},
		},
		{
			Name:        "Banho e Tosa",
			Description: "Full bath plus breed-standard grooming",
			Prices:      map[int]float64{7: 90, 15: 105, 30: 120, 60: 140},
		},
		{
			Name:        "Tosa Higienica",
			Description: "Hygienic trim with bath",
			Prices:      map[int]float64{15: 75, 30: 85, 60: 95},
		},
		{
			Name:        "Spa Completo",
			Description: "Bath, grooming, hydration and nail care",
			Prices:      map[int]float64{30: 180, 60: 200},
		},
	}

	for _, seed := range catalog {
		var existing model.Package
		if err := db.Where("user_id = ? AND name = ?", owner.Id, seed.Name).First(&existing).Error; err == nil {
			log.Printf("Package '%s' already exists, skipping...", seed.Name)
			continue
		}

		desc := seed.Description
		pkg := model.Package{
			UserId:      owner.Id,
			Name:        seed.Name,
			Description: &desc,
			IsActive:    true,
		}
		if err := db.Create(&pkg).Error; err != nil {
			log.Printf("Error creating package '%s': %v", seed.Name, err)
			continue
		}

		for recurrence, price := range seed.Prices {
			row := model.PackagePrice{
				PackageId:  pkg.Id,
				Recurrence: recurrence,
				Price:      price,
				IsActive:   true,
			}
			if err := db.Create(&row).Error; err != nil {
				log.Printf("Error creating price %dd for '%s': %v", recurrence, seed.Name, err)
			}
		}
		log.Printf("Created package: %s (%d tiers)", seed.Name, len(seed.Prices))
	}

	log.Println("✅ Seeding completed!")
}
