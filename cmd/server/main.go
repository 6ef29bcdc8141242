package main

import (
	"log"
	"os"

	"boutique_back_end/internal/config"
	"boutique_back_end/internal/database"
	"boutique_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Échec connexion base de données: %v", err)
	}

	if os.Getenv("SEED_DB") == "true" {
		if err := database.Seed(db); err != nil {
			log.Fatalf("❌ Échec du seed: %v", err)
		}
	}

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur boutique lancé sur le port", port)
	r.Run(":" + port)
}
