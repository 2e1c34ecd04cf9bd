package models

import "time"

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Price       float64   `json:"price" binding:"required"`
	ImageUrl    string    `json:"imageUrl"`
	Category    string    `json:"category" binding:"required"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}
