package models

import "time"

// AdminNotification is produced by the generative provider for the
// admin dashboard. The list is refreshed on login and cleared on logout.
type AdminNotification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"` // info, warning, critical
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []AdminNotification `json:"notifications"`
	UnreadCount   int                 `json:"unread_count"`
}
