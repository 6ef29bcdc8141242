package models

type Review struct {
	ID        uint   `json:"review_id" gorm:"column:review_id;primaryKey;autoIncrement"`
	UserID    string `json:"user_id" gorm:"column:user_id"`
	ProductID uint   `json:"product_id" gorm:"column:product_id"`
	Rating    int    `json:"rating" gorm:"column:rating"`
	Sentiment string `json:"sentiment" gorm:"column:sentiment"`
	Comment   string `json:"comment" gorm:"column:comment"`
}

func (Review) TableName() string { return "review" }
