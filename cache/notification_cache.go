package cache

import (
	"sync"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// ── Notification store ───────────────────────────────────────────────────────
// Refreshed when staff login state changes; cleared immediately on
// logout without a network call. A failed refresh leaves the previous
// list untouched (the caller only installs on success).

var (
	notifMu   sync.RWMutex
	notifList []models.AdminNotification
)

// ReplaceNotifications installs a freshly fetched list.
func ReplaceNotifications(list []models.AdminNotification) {
	notifMu.Lock()
	defer notifMu.Unlock()
	notifList = list
}

// ClearNotifications empties the list (logout path).
func ClearNotifications() {
	notifMu.Lock()
	defer notifMu.Unlock()
	notifList = nil
}

// Notifications returns a copy of the current list.
func Notifications() []models.AdminNotification {
	notifMu.RLock()
	defer notifMu.RUnlock()
	list := make([]models.AdminNotification, len(notifList))
	copy(list, notifList)
	return list
}

// UnreadNotificationCount is derived on every read, never cached.
func UnreadNotificationCount() int {
	notifMu.RLock()
	defer notifMu.RUnlock()
	count := 0
	for _, n := range notifList {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(id string) bool {
	notifMu.Lock()
	defer notifMu.Unlock()
	for i := range notifList {
		if notifList[i].ID == id {
			notifList[i].Read = true
			return true
		}
	}
	return false
}
