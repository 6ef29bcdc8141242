package database

import (
	"log"

	"boutique_back_end/internal/models"

	"gorm.io/gorm"
)

// Seed insère un catalogue d'exemple et les recommandations
// pré-calculées. Les recommandations ne sont créées par aucun endpoint :
// ce seed est leur chemin de provisionnement.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️  Catalogue déjà présent, seed ignoré")
		return nil
	}

	products := []models.Product{
		{Name: "Wireless Mouse", Price: 24.99},
		{Name: "Mechanical Keyboard", Price: 89.90},
		{Name: "USB-C Hub", Price: 39.50},
		{Name: "Laptop Stand", Price: 31.00},
		{Name: "Noise-Cancelling Headphones", Price: 199.00},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("✅ Seed: %d produits insérés", len(products))
	return nil
}

// SeedRecommendations associe des produits existants à un utilisateur.
// Utilisé par le seed de démo et par les tests.
func SeedRecommendations(db *gorm.DB, userID string, productIDs []uint) error {
	for _, pid := range productIDs {
		rec := models.Recommendation{UserID: userID, ProductID: pid}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}
