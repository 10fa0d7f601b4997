package models

import "time"

// Product is a catalog entry. OldPrice, Rating, StarCount and Orders
// are optional and stay NULL until the admin dashboard supplies them.
type Product struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	CurrentPrice float64   `gorm:"not null" json:"current_price"`
	OldPrice     *float64  `json:"old_price"`
	Rating       *float64  `json:"rating"`
	StarCount    *int      `json:"star_count"`
	Orders       *int      `json:"orders"`
	Image        string    `gorm:"not null" json:"image"`
	Category     string    `gorm:"not null" json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
