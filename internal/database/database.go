package database

import (
	"fmt"
	"log"
	"os"

	"boutique_back_end/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect ouvre la connexion PostgreSQL et migre le schéma.
// Le handle est retourné et injecté dans les handlers — pas de variable
// globale, pour pouvoir tester chaque handler avec sa propre base.
func Connect() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connexion PostgreSQL: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Connecté à PostgreSQL")
	return db, nil
}

// Migrate crée les tables du schéma relationnel. Aucune contrainte de
// clé étrangère n'est déclarée : l'intégrité référentielle n'est pas
// imposée par la couche applicative, et supprimer un produit laisse les
// lignes de panier orphelines (exclues ensuite par jointure interne).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.Review{},
		&models.Recommendation{},
	); err != nil {
		return fmt.Errorf("migration du schéma: %w", err)
	}
	return nil
}

func dsn() string {
	host := envOr("DB_HOST", "localhost")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	name := envOr("DB_NAME", "online_store")
	port := envOr("DB_PORT", "5432")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, name, port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
