package configs

import (
	"log"
	"time"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account if none exists.
func SeedAdmin(username, password string) error {
	var count int64
	if err := db.Model(&entity.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        "admin@crumbear.com",
		FullName:     "System Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin user %q", username)
	return nil
}

// SeedCatalog loads a small starter catalog into an empty database so the
// storefront and dashboard have something to show.
func SeedCatalog() error {
	var count int64
	if err := db.Model(&entity.Cake{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cakes := []entity.Cake{
		{CakeName: "Classic Vanilla", Flavor: "Vanilla", Frosting: "Buttercream", Size: "Medium", BasePrice: 1200.00, Availability: true},
		{CakeName: "Chocolate Dream", Flavor: "Chocolate", Frosting: "Ganache", Size: "Large", BasePrice: 1500.00, Availability: true},
		{CakeName: "Red Velvet", Flavor: "Red Velvet", Frosting: "Cream Cheese", Size: "Medium", BasePrice: 1400.00, Availability: true},
		{CakeName: "Ube Delight", Flavor: "Ube", Frosting: "Buttercream", Size: "Small", BasePrice: 1000.00, Availability: true},
		{CakeName: "Mango Cream", Flavor: "Mango", Frosting: "Whipped Cream", Size: "Medium", BasePrice: 1300.00, Availability: true},
	}
	if err := db.Create(&cakes).Error; err != nil {
		return err
	}

	candles, flowers, berries, heart := "Candles", "Flowers", "Berries", "Heart Topper"
	designs := []entity.Design{
		{CakeID: cakes[0].ID, Theme: "Birthday Celebration", ColorPalette: "Pink, Gold, White", TopperType: &candles, ComplexityLevel: entity.ComplexitySimple, ImageURL: defaultSeedImage},
		{CakeID: cakes[0].ID, Theme: "Elegant White", ColorPalette: "White, Silver", TopperType: &flowers, ComplexityLevel: entity.ComplexityModerate, ImageURL: defaultSeedImage},
		{CakeID: cakes[1].ID, Theme: "Chocolate Ganache Drip", ColorPalette: "Brown, Gold", TopperType: &berries, ComplexityLevel: entity.ComplexityComplex, ImageURL: defaultSeedImage},
		{CakeID: cakes[2].ID, Theme: "Classic Red Velvet", ColorPalette: "Red, White, Gold", TopperType: &heart, ComplexityLevel: entity.ComplexityModerate, ImageURL: defaultSeedImage},
		{CakeID: cakes[3].ID, Theme: "Purple Dream", ColorPalette: "Purple, Lavender, White", TopperType: &flowers, ComplexityLevel: entity.ComplexitySimple, ImageURL: defaultSeedImage},
	}
	if err := db.Create(&designs).Error; err != nil {
		return err
	}

	customers := []entity.Customer{
		{FullName: "Maria Santos", Email: "maria@example.com", City: "Manila"},
		{FullName: "Juan Cruz", Email: "juan@example.com", City: "Quezon City"},
		{FullName: "Ana Reyes", Email: "ana@example.com", City: "Makati"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	now := time.Now()
	reviews := []entity.Review{
		{CustomerID: customers[0].ID, DesignID: designs[0].ID, Rating: 5, ReviewText: "Absolutely loved this cake! Perfect for my birthday.", ReviewDate: now},
		{CustomerID: customers[1].ID, DesignID: designs[1].ID, Rating: 4, ReviewText: "Very elegant design, great taste.", ReviewDate: now},
		{CustomerID: customers[2].ID, DesignID: designs[2].ID, Rating: 5, ReviewText: "The chocolate was amazing!", ReviewDate: now},
	}
	if err := db.Create(&reviews).Error; err != nil {
		return err
	}

	log.Println("seeded starter catalog")
	return nil
}

const defaultSeedImage = "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=800"
