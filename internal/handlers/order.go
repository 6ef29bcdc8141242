package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

// List renvoie les commandes d'un utilisateur, les plus récentes en
// premier. Les commandes sont immuables : aucun endpoint ne les modifie
// ni ne les supprime.
func (h *OrderHandler) List(c *gin.Context) {
	userID := c.Param("user_id")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	orders := []models.Order{}
	err := h.DB.Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Confirm convertit le panier courant en commande :
//  1. lecture des lignes jointes au prix courant du produit ;
//  2. panier vide → erreur client, aucune commande créée ;
//  3. total = Σ(prix × quantité), arrondi à 2 décimales ;
//  4. insertion de la commande et vidage du panier dans une même
//     transaction — pas d'état partiel "commande créée, panier plein".
func (h *OrderHandler) Confirm(c *gin.Context) {
	var input struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if !requireSelfOrAdmin(c, input.UserID) {
		return
	}

	lines := []models.CartLine{}
	err := h.DB.Table("cart").
		Select("cart.cart_id, product.product_id, product.name, product.price, cart.quantity").
		Joins("JOIN product ON product.product_id = cart.product_id").
		Where("cart.user_id = ?", input.UserID).
		Scan(&lines).Error
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
		return
	}

	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	total = math.Round(total*100) / 100

	order := models.Order{
		UserID:      input.UserID,
		OrderDate:   time.Now(),
		TotalAmount: total,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", input.UserID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		log.Println("❌ Erreur confirmation commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to confirm order"})
		return
	}

	// Best-effort : l'échec de l'e-mail n'affecte jamais la commande.
	if email := c.GetString("email"); email != "" {
		if err := utils.SendOrderConfirmationEmail(email, order, lines); err != nil {
			log.Println("⚠️  Échec envoi e-mail de confirmation:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order placed successfully!"})
}

// Analytics compte les commandes par mois calendaire de l'année en
// cours : 12 entrées, index 0 = janvier, zéro pour les mois sans
// commande. Le regroupement se fait en Go pour rester portable entre
// PostgreSQL et SQLite.
func (h *OrderHandler) Analytics(c *gin.Context) {
	year := time.Now().Year()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	var dates []time.Time
	err := h.DB.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", start, end).
		Pluck("order_date", &dates).Error
	if err != nil {
		log.Println("❌ Erreur lecture analytics:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	labels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	data := make([]int, 12)
	for _, d := range dates {
		data[int(d.Month())-1]++
	}

	c.JSON(http.StatusOK, gin.H{"labels": labels, "data": data, "year": year})
}
