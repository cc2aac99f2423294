package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider counts fetches and can be flipped into a failure mode.
type stubProvider struct {
	products      []models.Product
	notifications []models.AdminNotification
	productErr    error
	notifErr      error
	productCalls  int
	notifCalls    int
}

func (s *stubProvider) FetchProducts(ctx context.Context) ([]models.Product, error) {
	s.productCalls++
	if s.productErr != nil {
		return nil, s.productErr
	}
	return s.products, nil
}

func (s *stubProvider) FetchNotifications(ctx context.Context) ([]models.AdminNotification, error) {
	s.notifCalls++
	if s.notifErr != nil {
		return nil, s.notifErr
	}
	return s.notifications, nil
}

func TestEnsureCatalogLoadedFetchesOnce(t *testing.T) {
	cache.ResetCatalog()
	t.Cleanup(cache.ResetCatalog)

	stub := &stubProvider{products: []models.Product{{ID: "p1", Name: "Desk Lamp"}}}
	svc := &CatalogService{provider: stub}

	svc.EnsureCatalogLoaded(context.Background())
	svc.EnsureCatalogLoaded(context.Background())
	svc.EnsureCatalogLoaded(context.Background())

	assert.Equal(t, 1, stub.productCalls)

	products, state, _ := cache.CatalogSnapshot()
	assert.Equal(t, models.CatalogReady, state)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestEnsureCatalogLoadedFailureIsTerminal(t *testing.T) {
	cache.ResetCatalog()
	t.Cleanup(cache.ResetCatalog)

	stub := &stubProvider{productErr: errors.New("provider down")}
	svc := &CatalogService{provider: stub}

	svc.EnsureCatalogLoaded(context.Background())

	_, state, errMsg := cache.CatalogSnapshot()
	assert.Equal(t, models.CatalogError, state)
	assert.Equal(t, "Unable to load products. Please try again later.", errMsg)

	// The error state sticks: a second call must not retry the fetch.
	svc.EnsureCatalogLoaded(context.Background())
	assert.Equal(t, 1, stub.productCalls)
}

func TestRefreshNotificationsInstallsOnSuccess(t *testing.T) {
	cache.ClearNotifications()
	t.Cleanup(cache.ClearNotifications)

	stub := &stubProvider{notifications: []models.AdminNotification{
		{ID: "n1", Title: "Low stock"},
		{ID: "n2", Title: "New order"},
	}}
	svc := &CatalogService{provider: stub}

	svc.RefreshNotifications(context.Background())

	assert.Len(t, cache.Notifications(), 2)
	assert.Equal(t, 2, cache.UnreadNotificationCount())
}

func TestRefreshNotificationsFailureKeepsPreviousList(t *testing.T) {
	cache.ClearNotifications()
	t.Cleanup(cache.ClearNotifications)

	cache.ReplaceNotifications([]models.AdminNotification{{ID: "n1", Title: "Low stock"}})

	stub := &stubProvider{notifErr: errors.New("provider down")}
	svc := &CatalogService{provider: stub}

	svc.RefreshNotifications(context.Background())

	list := cache.Notifications()
	require.Len(t, list, 1)
	assert.Equal(t, "n1", list[0].ID)
}

func TestClearNotificationsNoNetworkCall(t *testing.T) {
	cache.ClearNotifications()
	t.Cleanup(cache.ClearNotifications)

	cache.ReplaceNotifications([]models.AdminNotification{{ID: "n1"}})

	stub := &stubProvider{}
	svc := &CatalogService{provider: stub}

	svc.ClearNotifications()

	assert.Empty(t, cache.Notifications())
	assert.Zero(t, stub.notifCalls)
}
