package config

import (
	"log"

	"shelftrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedCatalogData seeds the category and collection master tables.
// These have no write routes, so an empty table is seeded on first boot.
func SeedCatalogData(db *gorm.DB) error {
	if err := seedCollections(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}

	log.Println("✅ Catalog data seeded successfully")
	return nil
}

func seedCollections(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Collection{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	collections := []models.Collection{
		{CollectionName: "Fiction"},
		{CollectionName: "Non-Fiction"},
		{CollectionName: "Reference"},
		{CollectionName: "Periodicals"},
		{CollectionName: "Children"},
	}
	return db.Create(&collections).Error
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	categories := []models.Category{
		{CatName: "Science Fiction", SubCatName: "Space Opera"},
		{CatName: "History", SubCatName: "Ancient Civilizations"},
		{CatName: "Technology", SubCatName: "Programming"},
		{CatName: "Mathematics", SubCatName: "Calculus"},
		{CatName: "Literature", SubCatName: "Classic Novels"},
		{CatName: "Art", SubCatName: "Modern Art"},
		{CatName: "Science", SubCatName: "Biology"},
		{CatName: "Business", SubCatName: "Management"},
		{CatName: "Self-Help", SubCatName: "Motivational"},
		{CatName: "Cooking", SubCatName: "Baking"},
	}
	return db.Create(&categories).Error
}
