package analytics_controller

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

type overviewResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	OrderCount      int     `json:"order_count"`
	ItemsSold       int     `json:"items_sold"`
	AverageOrder    float64 `json:"average_order_value"`
	CancelledOrders int     `json:"cancelled_orders"`
}

type topProductEntry struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

type deviceBreakdownEntry struct {
	DeviceType string `json:"device_type"`
	Orders     int    `json:"orders"`
}

type browserBreakdownEntry struct {
	Browser string `json:"browser"`
	Orders  int    `json:"orders"`
}

type viewedProductEntry struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Views       int    `json:"views"`
}

// GetOverview godoc
// @Summary Sales overview
// @Description Revenue, order count and average order value. Cancelled orders are excluded from revenue.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetOverview(c *gin.Context) {
	orders := cache.AllOrders()

	var resp overviewResponse
	for _, o := range orders {
		if o.Status == "cancelled" {
			resp.CancelledOrders++
			continue
		}
		resp.TotalRevenue += o.TotalAmount
		resp.ItemsSold += o.ItemCount()
		resp.OrderCount++
	}
	if resp.OrderCount > 0 {
		resp.AverageOrder = resp.TotalRevenue / float64(resp.OrderCount)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview fetched successfully", resp))
}

// GetTopProducts godoc
// @Summary Top selling products
// @Description Products ranked by units sold across non-cancelled orders
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 5)"
// @Success 200 {object} models.ApiResponse
// @Router /admin/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	totals := make(map[string]*topProductEntry)
	for _, o := range cache.AllOrders() {
		if o.Status == "cancelled" {
			continue
		}
		for _, item := range o.Items {
			entry, ok := totals[item.ProductID]
			if !ok {
				entry = &topProductEntry{ProductID: item.ProductID, ProductName: item.ProductName}
				totals[item.ProductID] = entry
			}
			entry.UnitsSold += item.Quantity
			entry.Revenue += item.Subtotal
		}
	}

	ranked := make([]topProductEntry, 0, len(totals))
	for _, entry := range totals {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].UnitsSold != ranked[j].UnitsSold {
			return ranked[i].UnitsSold > ranked[j].UnitsSold
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products fetched successfully", ranked))
}

// GetDeviceBreakdown godoc
// @Summary Orders by device type
// @Description Order counts grouped by the device type recorded at checkout
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/analytics/devices [get]
func GetDeviceBreakdown(c *gin.Context) {
	counts := make(map[string]int)
	for _, o := range cache.AllOrders() {
		device := o.DeviceType
		if device == "" {
			device = "unknown"
		}
		counts[device]++
	}

	breakdown := make([]deviceBreakdownEntry, 0, len(counts))
	for device, n := range counts {
		breakdown = append(breakdown, deviceBreakdownEntry{DeviceType: device, Orders: n})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Orders != breakdown[j].Orders {
			return breakdown[i].Orders > breakdown[j].Orders
		}
		return breakdown[i].DeviceType < breakdown[j].DeviceType
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Device breakdown fetched successfully", breakdown))
}

// GetBrowserBreakdown godoc
// @Summary Orders by browser
// @Description Order counts grouped by the browser recorded at checkout
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/analytics/browsers [get]
func GetBrowserBreakdown(c *gin.Context) {
	counts := make(map[string]int)
	for _, o := range cache.AllOrders() {
		browser := o.Browser
		if browser == "" {
			browser = "Other"
		}
		counts[browser]++
	}

	breakdown := make([]browserBreakdownEntry, 0, len(counts))
	for browser, n := range counts {
		breakdown = append(breakdown, browserBreakdownEntry{Browser: browser, Orders: n})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Orders != breakdown[j].Orders {
			return breakdown[i].Orders > breakdown[j].Orders
		}
		return breakdown[i].Browser < breakdown[j].Browser
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Browser breakdown fetched successfully", breakdown))
}

// GetMostViewed godoc
// @Summary Most viewed products
// @Description Products ranked by storefront detail views
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 5)"
// @Success 200 {object} models.ApiResponse
// @Router /admin/analytics/most-viewed [get]
func GetMostViewed(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	products, _, _ := cache.CatalogSnapshot()
	sort.Slice(products, func(i, j int) bool {
		if products[i].Views != products[j].Views {
			return products[i].Views > products[j].Views
		}
		return products[i].ID < products[j].ID
	})
	if len(products) > limit {
		products = products[:limit]
	}

	ranked := make([]viewedProductEntry, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, viewedProductEntry{ProductID: p.ID, ProductName: p.Name, Views: p.Views})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Most viewed products fetched successfully", ranked))
}
