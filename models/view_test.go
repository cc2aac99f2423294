package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewRejectsUnknown(t *testing.T) {
	_, err := ParseView("settings")
	assert.ErrorIs(t, err, ErrUnknownView)

	v, err := ParseView("contact")
	require.NoError(t, err)
	assert.Equal(t, ViewContact, v)
}

func TestNewViewSessionStartsOnStore(t *testing.T) {
	s := NewViewSession()

	assert.Equal(t, ViewStore, s.View)
	assert.False(t, s.CartOpen)
	assert.False(t, s.MenuOpen)
	assert.False(t, s.LoginOpen)
}

func TestNavigateClosesOverlays(t *testing.T) {
	s := NewViewSession()
	s.CartOpen = true
	s.MenuOpen = true
	s.LoginOpen = true

	err := s.Navigate(ViewContact, AuthContext{})

	require.NoError(t, err)
	assert.Equal(t, ViewContact, s.View)
	assert.False(t, s.CartOpen)
	assert.False(t, s.MenuOpen)
	assert.False(t, s.LoginOpen)
}

func TestNavigateAdminRejectedWithoutAuth(t *testing.T) {
	s := NewViewSession()
	s.View = ViewCheckout
	s.CartOpen = true

	err := s.Navigate(ViewAdmin, AuthContext{})

	// Rejected before any state change: the prior view and overlays stand.
	assert.ErrorIs(t, err, ErrAdminForbidden)
	assert.Equal(t, ViewCheckout, s.View)
	assert.True(t, s.CartOpen)
}

func TestNavigateAdminRejectedForUnrecognizedRole(t *testing.T) {
	s := NewViewSession()

	err := s.Navigate(ViewAdmin, AuthContext{LoggedIn: true, Role: "intern"})

	assert.ErrorIs(t, err, ErrAdminForbidden)
	assert.Equal(t, ViewStore, s.View)
}

func TestNavigateAdminAllowedForEveryRecognizedRole(t *testing.T) {
	for _, role := range []string{RoleEditor, RoleManager, RoleAdmin} {
		s := NewViewSession()

		err := s.Navigate(ViewAdmin, AuthContext{LoggedIn: true, Role: role})

		require.NoError(t, err, "role %s", role)
		assert.Equal(t, ViewAdmin, s.View)
	}
}

func TestLoginSucceededLandsOnAdmin(t *testing.T) {
	s := NewViewSession()
	s.LoginOpen = true

	s.LoginSucceeded()

	assert.Equal(t, ViewAdmin, s.View)
	assert.False(t, s.LoginOpen)
}

func TestOrderPlacedMovesToConfirmation(t *testing.T) {
	s := NewViewSession()
	s.View = ViewCheckout
	s.CartOpen = true

	s.OrderPlaced("VRV-2026-000042")

	assert.Equal(t, ViewConfirmation, s.View)
	assert.Equal(t, "VRV-2026-000042", s.LastOrderNumber)
	assert.False(t, s.CartOpen)
}

func TestStandaloneOnlyForAdmin(t *testing.T) {
	for _, tc := range []struct {
		view       View
		standalone bool
	}{
		{ViewStore, false},
		{ViewAdmin, true},
		{ViewDashboard, false},
		{ViewCheckout, false},
		{ViewConfirmation, false},
		{ViewContact, false},
	} {
		s := ViewSession{View: tc.view}
		assert.Equal(t, tc.standalone, s.Standalone(), "view %s", tc.view)

		resp := s.ToResponse()
		assert.Equal(t, tc.standalone, resp.Standalone, "view %s", tc.view)
		assert.Equal(t, !tc.standalone, resp.ShowFooter, "view %s", tc.view)
	}
}
