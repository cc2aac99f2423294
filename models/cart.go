package models

// CartItem is one product line in a visitor's cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=0"`
}

// CartResponse is the cart contents enriched with catalog data.
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  float64            `json:"subtotal"`
}

type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// WishlistResponse is the set of wishlisted product ids plus cards for
// the ones still present in the catalog.
type WishlistResponse struct {
	ProductIDs []string                    `json:"product_ids"`
	Products   []StorefrontProductResponse `json:"products"`
}

type WishlistToggleRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
