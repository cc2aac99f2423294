package models

import "time"

// Product is a catalog entry as delivered by the generative provider.
// The engine treats products as immutable; only admin operations replace them.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Stock       int       `json:"stock"`
	Views       int       `json:"views,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// InStock reports whether the product has any units left.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name        string   `json:"name" binding:"required" example:"Sample Product"`
	Description string   `json:"description" binding:"required" example:"This is a sample product"`
	Price       float64  `json:"price" binding:"required,min=0" example:"99.99"`
	Rating      float64  `json:"rating" binding:"min=0,max=5" example:"4.5"`
	Images      []string `json:"images" binding:"required,min=1"`
	Category    string   `json:"category" binding:"required" example:"Audio"`
	Brand       string   `json:"brand" binding:"required" example:"Nordwave"`
	Stock       int      `json:"stock" binding:"min=0" example:"25"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,min=0"`
	Rating      *float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Images      *[]string `json:"images"`
	Category    *string   `json:"category"`
	Brand       *string   `json:"brand"`
	Stock       *int      `json:"stock" binding:"omitempty,min=0"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProductResponse is the thin card payload for the grid.
type StorefrontProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	InStock  bool    `json:"in_stock"`
}

func (p Product) ToStorefrontResponse() StorefrontProductResponse {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return StorefrontProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Image:    image,
		Price:    p.Price,
		Rating:   p.Rating,
		Category: p.Category,
		Brand:    p.Brand,
		InStock:  p.InStock(),
	}
}
