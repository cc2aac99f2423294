package models

import "time"

// Staff roles recognized by the admin area.
const (
	RoleEditor  = "editor"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// IsRecognizedRole is the single authorization check used by both the
// auth middleware and the view controller before any admin transition.
func IsRecognizedRole(role string) bool {
	switch role {
	case RoleEditor, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CanManageCatalog reports whether the role may mutate products and orders.
func CanManageCatalog(role string) bool {
	return role == RoleManager || role == RoleAdmin
}

// StaffAccount is an admin-area user. Accounts are seeded from the
// environment at boot; PasswordHash is bcrypt and never serialized.
type StaffAccount struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`   // editor, manager, admin
	Status       string     `json:"status"` // active, suspended
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (a StaffAccount) ToResponse() StaffResponse {
	return StaffResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type StaffLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type StaffLoginResponse struct {
	Staff StaffResponse `json:"staff"`
	Token string        `json:"token"`
	View  View          `json:"view"` // every recognized role lands on admin
}

type StaffResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=editor manager admin"`
}
