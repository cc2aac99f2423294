package product_controller

import (
	"strconv"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseCriteria builds the engine criteria from query parameters. Every
// parameter is optional; absent means "no constraint".
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		Query:      c.Query("q"),
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
	}

	if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			criteria.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			criteria.MaxPrice = &maxPrice
		}
	}
	if minRatingStr := c.Query("minRating"); minRatingStr != "" {
		if minRating, err := strconv.ParseFloat(minRatingStr, 64); err == nil {
			criteria.MinRating = minRating
		}
	}

	return criteria
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices one page out of the derived list.
func paginate(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
