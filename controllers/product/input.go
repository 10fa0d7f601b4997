package productcontroller

import "github.com/Arzish122/fullstack-ecommerce/models"

// ProductInput is the body accepted by create and update. Required
// fields must be present; Description is a pointer so the key itself
// is required even though the empty string is a legal value. Optional
// numerics stay nil when omitted and are stored as NULL.
type ProductInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  *string  `json:"description" binding:"required"`
	CurrentPrice *float64 `json:"current_price" binding:"required"`
	OldPrice     *float64 `json:"old_price"`
	Rating       *float64 `json:"rating"`
	StarCount    *int     `json:"star_count"`
	Orders       *int     `json:"orders"`
	Image        string   `json:"image" binding:"required"`
	Category     string   `json:"category" binding:"required"`
}

func (in *ProductInput) toModel() *models.Product {
	return &models.Product{
		Title:        in.Title,
		Description:  *in.Description,
		CurrentPrice: *in.CurrentPrice,
		OldPrice:     in.OldPrice,
		Rating:       in.Rating,
		StarCount:    in.StarCount,
		Orders:       in.Orders,
		Image:        in.Image,
		Category:     in.Category,
	}
}
