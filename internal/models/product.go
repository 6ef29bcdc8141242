package models

type Product struct {
	ID    uint    `json:"product_id" gorm:"column:product_id;primaryKey;autoIncrement"`
	Name  string  `json:"name" gorm:"column:name"`
	Price float64 `json:"price" gorm:"column:price"`
}

func (Product) TableName() string { return "product" }
