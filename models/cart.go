package models

// CartItem is a single line of the shared cart. The unique index on
// ProductID backs the merge-on-add upsert: repeated adds of the same
// product accumulate quantity instead of inserting duplicate rows.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"not null;uniqueIndex" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

// CartLine is the read model returned by cart listings: a cart item
// joined with the product columns the storefront renders. Not a table.
type CartLine struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Title        string  `json:"title"`
	Image        string  `json:"image"`
	CurrentPrice float64 `json:"current_price"`
}
