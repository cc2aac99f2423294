package models

import "errors"

// View is one of the six top-level storefront views. Exactly one is
// active per visitor session; it is the sole source of truth for which
// subtree the client renders.
type View string

const (
	ViewStore        View = "store"
	ViewAdmin        View = "admin"
	ViewDashboard    View = "dashboard"
	ViewCheckout     View = "checkout"
	ViewConfirmation View = "confirmation"
	ViewContact      View = "contact"
)

var ErrUnknownView = errors.New("unknown view")
var ErrAdminForbidden = errors.New("admin view requires an authenticated staff role")

// ParseView validates a navigation target against the closed view set.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewStore, ViewAdmin, ViewDashboard, ViewCheckout, ViewConfirmation, ViewContact:
		return View(s), nil
	}
	return "", ErrUnknownView
}

// AuthContext is the slice of auth state the view controller needs to
// gate admin navigation.
type AuthContext struct {
	LoggedIn bool
	Role     string
}

// Authorized reports whether the caller may enter the admin view.
func (a AuthContext) Authorized() bool {
	return a.LoggedIn && IsRecognizedRole(a.Role)
}

// ViewSession is a visitor's view and overlay state. Overlays are
// independent of the active view but reset to closed on every view
// change. The session service persists this to Redis per visitor.
type ViewSession struct {
	View            View   `json:"view"`
	CartOpen        bool   `json:"cart_open"`
	MenuOpen        bool   `json:"menu_open"`
	LoginOpen       bool   `json:"login_open"`
	LastOrderNumber string `json:"last_order_number,omitempty"`
}

// NewViewSession returns the initial session state: store view, all
// overlays closed.
func NewViewSession() ViewSession {
	return ViewSession{View: ViewStore}
}

// CloseOverlays closes the cart panel, mobile menu and login modal.
func (s *ViewSession) CloseOverlays() {
	s.CartOpen = false
	s.MenuOpen = false
	s.LoginOpen = false
}

// Navigate moves the session to the target view. Navigation to admin is
// rejected before any state change unless the caller is authenticated
// with a recognized role. All overlays close on a successful transition.
func (s *ViewSession) Navigate(target View, auth AuthContext) error {
	if _, err := ParseView(string(target)); err != nil {
		return err
	}
	if target == ViewAdmin && !auth.Authorized() {
		return ErrAdminForbidden
	}
	s.View = target
	s.CloseOverlays()
	return nil
}

// LoginSucceeded applies the post-login transition: the login overlay
// closes and the session lands on the admin view regardless of which
// recognized role logged in.
func (s *ViewSession) LoginSucceeded() {
	s.View = ViewAdmin
	s.CloseOverlays()
}

// OrderPlaced records the order identifier and moves the session to the
// confirmation view. Cart clearing is the cart service's job; the caller
// sequences both.
func (s *ViewSession) OrderPlaced(orderNumber string) {
	s.LastOrderNumber = orderNumber
	s.View = ViewConfirmation
	s.CloseOverlays()
}

// Standalone reports whether the view renders as a full-page replacement
// outside the shared header/footer shell. Only admin does.
func (s ViewSession) Standalone() bool {
	return s.View == ViewAdmin
}

// ViewStateResponse is the payload returned to the client after every
// view or overlay mutation.
type ViewStateResponse struct {
	View            View   `json:"view"`
	CartOpen        bool   `json:"cart_open"`
	MenuOpen        bool   `json:"menu_open"`
	LoginOpen       bool   `json:"login_open"`
	Standalone      bool   `json:"standalone"`
	ShowFooter      bool   `json:"show_footer"`
	LastOrderNumber string `json:"last_order_number,omitempty"`
}

func (s ViewSession) ToResponse() ViewStateResponse {
	return ViewStateResponse{
		View:            s.View,
		CartOpen:        s.CartOpen,
		MenuOpen:        s.MenuOpen,
		LoginOpen:       s.LoginOpen,
		Standalone:      s.Standalone(),
		ShowFooter:      !s.Standalone(),
		LastOrderNumber: s.LastOrderNumber,
	}
}
