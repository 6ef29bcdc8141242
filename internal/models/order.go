package models

import "time"

type Order struct {
	ID          uint      `json:"order_id" gorm:"column:order_id;primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"column:user_id;index"`
	OrderDate   time.Time `json:"order_date" gorm:"column:order_date"`
	TotalAmount float64   `json:"total_amount" gorm:"column:total_amount"`
}

func (Order) TableName() string { return "order_table" }
