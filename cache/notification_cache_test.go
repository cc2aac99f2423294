package cache

import (
	"testing"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNotifications() []models.AdminNotification {
	return []models.AdminNotification{
		{ID: "n1", Title: "Low stock", Severity: "warning"},
		{ID: "n2", Title: "New order", Severity: "info"},
		{ID: "n3", Title: "Refund requested", Severity: "critical", Read: true},
	}
}

func TestUnreadCountDerivedFromList(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)

	ReplaceNotifications(sampleNotifications())
	assert.Equal(t, 2, UnreadNotificationCount())

	require.True(t, MarkNotificationRead("n1"))
	assert.Equal(t, 1, UnreadNotificationCount())

	require.True(t, MarkNotificationRead("n2"))
	assert.Zero(t, UnreadNotificationCount())
}

func TestMarkNotificationReadUnknownID(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)

	ReplaceNotifications(sampleNotifications())
	assert.False(t, MarkNotificationRead("missing"))
}

func TestClearNotificationsEmptiesFeed(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)

	ReplaceNotifications(sampleNotifications())
	ClearNotifications()

	assert.Empty(t, Notifications())
	assert.Zero(t, UnreadNotificationCount())
}

func TestNotificationsReturnsCopy(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)

	ReplaceNotifications(sampleNotifications())

	list := Notifications()
	list[0].Read = true

	assert.Equal(t, 2, UnreadNotificationCount())
}
