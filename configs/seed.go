package configs

import (
	"log"

	"dushanbe-eats/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial admin once, from env credentials.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	email := cfg.AdminEmail
	admin := entity.User{
		Name:     "Admin",
		Email:    &email,
		Password: string(hash),
		City:     "Душанбе",
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}

// SeedDemo loads the demo catalog on a fresh database only.
func SeedDemo() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:         "Плов Хаус",
			Description:  "Традиционный таджикский плов и национальные блюда",
			CuisineType:  "Таджикская",
			Address:      "ул. Рудаки 45",
			City:         "Душанбе",
			Rating:       4.8,
			DeliveryTime: "30-40 мин",
			MinOrder:     50,
			DeliveryFee:  10,
			IsActive:     true,
		},
		{
			Name:         "Бургер Мания",
			Description:  "Сочные бургеры и картофель фри",
			CuisineType:  "Фаст-фуд",
			Address:      "ул. Исмоили Сомони 12",
			City:         "Душанбе",
			Rating:       4.5,
			DeliveryTime: "25-35 мин",
			MinOrder:     40,
			DeliveryFee:  15,
			IsActive:     true,
		},
		{
			Name:         "Кафе Ориён",
			Description:  "Традиционная кухня и свежая выпечка",
			CuisineType:  "Таджикская",
			Address:      "ул. Бухоро 23",
			City:         "Худжанд",
			Rating:       4.7,
			DeliveryTime: "30-45 мин",
			MinOrder:     45,
			DeliveryFee:  12,
			IsActive:     true,
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	menus := map[string][]entity.MenuItem{
		"Таджикская": {
			{Name: "Плов", Description: "Традиционный плов с бараниной", Price: 45, Category: "Горячие блюда", IsAvailable: true},
			{Name: "Самбуса", Description: "Хрустящая самбуса с мясом", Price: 15, Category: "Закуски", IsAvailable: true},
			{Name: "Лагман", Description: "Наваристый лагман с овощами", Price: 40, Category: "Горячие блюда", IsAvailable: true},
			{Name: "Зеленый чай", Description: "Традиционный зеленый чай", Price: 10, Category: "Напитки", IsAvailable: true},
		},
		"Фаст-фуд": {
			{Name: "Классик Бургер", Description: "Сочный бургер с говядиной", Price: 55, Category: "Бургеры", IsAvailable: true},
			{Name: "Чизбургер", Description: "Бургер с двойным сыром", Price: 65, Category: "Бургеры", IsAvailable: true},
			{Name: "Картофель фри", Description: "Хрустящий картофель", Price: 25, Category: "Закуски", IsAvailable: true},
			{Name: "Кола", Description: "Освежающий напиток", Price: 15, Category: "Напитки", IsAvailable: true},
		},
	}

	var items []entity.MenuItem
	for _, r := range restaurants {
		for _, it := range menus[r.CuisineType] {
			it.RestaurantID = r.ID
			items = append(items, it)
		}
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded %d restaurants, %d menu items", len(restaurants), len(items))
	return nil
}
