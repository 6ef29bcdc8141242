package models

type User struct {
	ID        string `json:"user_id" gorm:"column:user_id;primaryKey"`
	FirstName string `json:"first_name" gorm:"column:first_name"`
	LastName  string `json:"last_name" gorm:"column:last_name"`
	Email     string `json:"email" gorm:"column:email;uniqueIndex"`
	Password  string `json:"-" gorm:"column:password"`
	Role      string `json:"role" gorm:"column:role"`
}

func (User) TableName() string { return "user" }
