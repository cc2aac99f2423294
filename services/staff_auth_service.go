package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// StaffAuthService handles staff authentication operations
type StaffAuthService struct{}

var staffAuthService = &StaffAuthService{}

// GetStaffAuthService returns the staff auth service
func GetStaffAuthService() *StaffAuthService {
	return staffAuthService
}

// HashPassword hashes a password using bcrypt
func (s *StaffAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *StaffAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements.
// Minimum 8 characters
func (s *StaffAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ════════════════════════════════════════════════════════════
// Boot-time account seeding
// ════════════════════════════════════════════════════════════

// SeedAccountsFromEnv reads STAFF_ACCOUNTS and installs the staff
// account list. Format: semicolon-separated entries of
// email|name|role|bcrypt-hash. With the variable unset, a single dev
// admin account is seeded so the admin area stays reachable locally.
func SeedAccountsFromEnv() error {
	raw := os.Getenv("STAFF_ACCOUNTS")
	if raw == "" {
		hash, err := staffAuthService.HashPassword("verve-dev-password")
		if err != nil {
			return err
		}
		cache.SeedAccounts([]models.StaffAccount{{
			ID:           uuid.Must(uuid.NewV7()).String(),
			Email:        "admin@verve.local",
			Name:         "Dev Admin",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Status:       "active",
			CreatedAt:    time.Now(),
		}})
		log.Println("⚠️  STAFF_ACCOUNTS not set, seeded dev admin account admin@verve.local")
		return nil
	}

	var accounts []models.StaffAccount
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) != 4 {
			return fmt.Errorf("malformed STAFF_ACCOUNTS entry: %q", entry)
		}
		role := strings.TrimSpace(parts[2])
		if !models.IsRecognizedRole(role) {
			return fmt.Errorf("unrecognized role %q in STAFF_ACCOUNTS", role)
		}
		accounts = append(accounts, models.StaffAccount{
			ID:           uuid.Must(uuid.NewV7()).String(),
			Email:        strings.TrimSpace(parts[0]),
			Name:         strings.TrimSpace(parts[1]),
			PasswordHash: strings.TrimSpace(parts[3]),
			Role:         role,
			Status:       "active",
			CreatedAt:    time.Now(),
		})
	}
	if len(accounts) == 0 {
		return fmt.Errorf("STAFF_ACCOUNTS set but no valid entries found")
	}
	cache.SeedAccounts(accounts)
	log.Printf("✅ Seeded %d staff account(s)", len(accounts))
	return nil
}
