package staff_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetStaff godoc
// @Summary List staff accounts
// @Tags Admin - Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.StaffResponse}
// @Router /admin/staff [get]
func GetStaff(c *gin.Context) {
	accounts := cache.Accounts()
	responses := make([]models.StaffResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, a.ToResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Staff fetched successfully", responses))
}

// CreateStaff godoc
// @Summary Create a staff account
// @Description Registers a new staff account. Admin role required.
// @Tags Admin - Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staff body models.CreateStaffRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.StaffResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /admin/staff [post]
func CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	hash, err := services.GetStaffAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[admin.staff] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	account := models.StaffAccount{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       "active",
		CreatedAt:    time.Now(),
	}

	if err := cache.AddAccount(account); err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}

	log.Printf("[admin.staff] created account %s (%s)", account.Email, account.Role)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Staff account created", account.ToResponse()))
}

// SuspendStaff godoc
// @Summary Suspend a staff account
// @Tags Admin - Staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Account not found"
// @Router /admin/staff/{id}/suspend [post]
func SuspendStaff(c *gin.Context) {
	id := c.Param("id")

	if !cache.SetAccountStatus(id, "suspended") {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Account not found"))
		return
	}

	log.Printf("[admin.staff] suspended account %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account suspended", nil))
}

// UnsuspendStaff godoc
// @Summary Reactivate a staff account
// @Tags Admin - Staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Account not found"
// @Router /admin/staff/{id}/unsuspend [post]
func UnsuspendStaff(c *gin.Context) {
	id := c.Param("id")

	if !cache.SetAccountStatus(id, "active") {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Account not found"))
		return
	}

	log.Printf("[admin.staff] reactivated account %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account reactivated", nil))
}
