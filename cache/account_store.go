package cache

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// ── Staff account store ──────────────────────────────────────────────────────
// Accounts are seeded at boot from the environment; the admin area can
// add and suspend accounts at runtime.

var (
	accountMu sync.RWMutex
	accounts  []models.StaffAccount
)

var ErrDuplicateEmail = errors.New("email already registered")

// SeedAccounts installs the boot-time account list.
func SeedAccounts(list []models.StaffAccount) {
	accountMu.Lock()
	defer accountMu.Unlock()
	accounts = list
}

// AccountByEmail finds an account by email, case-insensitively.
func AccountByEmail(email string) (models.StaffAccount, bool) {
	accountMu.RLock()
	defer accountMu.RUnlock()
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return models.StaffAccount{}, false
}

// AccountByID finds an account by id.
func AccountByID(id string) (models.StaffAccount, bool) {
	accountMu.RLock()
	defer accountMu.RUnlock()
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.StaffAccount{}, false
}

// Accounts returns a copy of all staff accounts.
func Accounts() []models.StaffAccount {
	accountMu.RLock()
	defer accountMu.RUnlock()
	list := make([]models.StaffAccount, len(accounts))
	copy(list, accounts)
	return list
}

// AddAccount registers a new staff account.
func AddAccount(a models.StaffAccount) error {
	accountMu.Lock()
	defer accountMu.Unlock()
	for _, existing := range accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return ErrDuplicateEmail
		}
	}
	accounts = append(accounts, a)
	return nil
}

// SetAccountStatus flips an account between active and suspended.
func SetAccountStatus(id, status string) bool {
	accountMu.Lock()
	defer accountMu.Unlock()
	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].Status = status
			return true
		}
	}
	return false
}

// RecordLogin stamps the account's last login time.
func RecordLogin(id string) {
	accountMu.Lock()
	defer accountMu.Unlock()
	now := time.Now()
	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].LastLoginAt = &now
			return
		}
	}
}

// ResetAccounts drops all accounts (tests).
func ResetAccounts() {
	accountMu.Lock()
	defer accountMu.Unlock()
	accounts = nil
}
