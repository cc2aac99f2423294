package order_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadOrderReceiptPDF godoc
// @Summary Download an order receipt PDF
// @Description Generate and download a receipt PDF for one of the session's orders
// @Tags Storefront - Orders
// @Produce octet-stream
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/orders/{id}/receipt [get]
func DownloadOrderReceiptPDF(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	orderID := c.Param("id")

	order, found := cache.GetOrder(orderID)
	if !found || order.SessionID != sessionID {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	pdfBuffer, err := generateOrderReceiptPDF(&order)
	if err != nil {
		log.Printf("[order.receipt] failed to generate PDF for %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[order.receipt] receipt PDF downloaded for order %s", order.OrderNumber)
}

func generateOrderReceiptPDF(order *models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("RECEIPT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("VERVE STORE", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@verve.shop", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order #%s", order.OrderNumber), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items Table Header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, item := range order.Items {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.ProductName, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Subtotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Summary
	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Subtotal", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Subtotal), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Tax", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Tax), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.TotalAmount), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
