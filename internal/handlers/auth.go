package handlers

import (
	"log"
	"net/http"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB *gorm.DB
}

// Register crée un compte. L'échec d'insertion (y compris email déjà
// pris, contrainte d'unicité) est renvoyé comme un échec générique :
// on ne révèle pas au client quels emails existent.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Println("❌ Erreur hashage mot de passe:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	role := input.Role
	if role == "" {
		role = "customer"
	}

	user := models.User{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      role,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Login vérifie les identifiants et délivre un JWT signé. Le rôle n'est
// plus une simple valeur stockée côté client : chaque requête protégée
// revérifie le token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.VerifyPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		log.Println("❌ Erreur génération JWT:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":    user.Role,
		"user_id": user.ID,
		"token":   token,
	})
}
