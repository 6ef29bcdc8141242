package models

type CartItem struct {
	ID        uint   `json:"cart_id" gorm:"column:cart_id;primaryKey;autoIncrement"`
	UserID    string `json:"user_id" gorm:"column:user_id;index"`
	ProductID uint   `json:"product_id" gorm:"column:product_id"`
	Quantity  int    `json:"quantity" gorm:"column:quantity"`
}

func (CartItem) TableName() string { return "cart" }

// CartLine est une ligne de panier jointe au produit, telle que renvoyée
// par GET /api/cart/:user_id. Les lignes orphelines (produit supprimé)
// sont exclues par la jointure interne.
type CartLine struct {
	CartID    uint    `json:"cart_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
