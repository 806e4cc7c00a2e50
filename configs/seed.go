package configs

import (
	"log"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a small demo menu so a fresh database is usable.
func SeedCatalog() error {
	db := DB()

	var burgers, drinks entity.Category
	db.FirstOrCreate(&burgers, entity.Category{Name: "Burgers", DisplayOrder: 1})
	db.FirstOrCreate(&drinks, entity.Category{Name: "Drinks", DisplayOrder: 2})

	var onion, pickles, tomato entity.Ingredient
	db.FirstOrCreate(&onion, entity.Ingredient{Name: "Onion"})
	db.FirstOrCreate(&pickles, entity.Ingredient{Name: "Pickles"})
	db.FirstOrCreate(&tomato, entity.Ingredient{Name: "Tomato"})

	var count int64
	if err := db.Model(&entity.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	foods := []entity.Food{
		{
			Name: "Classic Burger", Price: 950, PrepMin: 8,
			CategoryID:  burgers.ID,
			Ingredients: []entity.Ingredient{onion, pickles, tomato},
		},
		{
			Name: "Cheese Burger", Price: 1050, PrepMin: 9,
			CategoryID:  burgers.ID,
			Ingredients: []entity.Ingredient{onion, pickles},
		},
		{
			Name: "Lemonade", Price: 350, PrepMin: 2,
			CategoryID: drinks.ID,
		},
	}
	for i := range foods {
		if err := db.Create(&foods[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
