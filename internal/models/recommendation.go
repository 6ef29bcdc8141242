package models

// Recommendation associe un utilisateur à un produit. Les lignes sont
// pré-calculées et insérées au seed — aucun endpoint n'en crée.
type Recommendation struct {
	ID        uint   `json:"recommendation_id" gorm:"column:recommendation_id;primaryKey;autoIncrement"`
	UserID    string `json:"user_id" gorm:"column:user_id;index"`
	ProductID uint   `json:"product_id" gorm:"column:product_id"`
}

func (Recommendation) TableName() string { return "recommendation" }
