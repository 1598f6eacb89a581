package tests

import (
	"testing"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	admin := domain.Session{Token: "a", Role: domain.RoleAdmin}
	kitchen := domain.Session{Token: "k", Role: domain.RoleKitchen}
	roleless := domain.Session{Token: "r"}

	tests := []struct {
		name     string
		session  domain.Session
		required []domain.Role
		expected service.Decision
	}{
		{name: "anonymous_no_roles", session: domain.Session{}, expected: service.RedirectTo("/login")},
		{name: "anonymous_admin", session: domain.Session{Role: domain.RoleAdmin}, required: []domain.Role{domain.RoleAdmin}, expected: service.RedirectTo("/login")},
		{name: "anonymous_both", session: domain.Session{}, required: []domain.Role{domain.RoleAdmin, domain.RoleKitchen}, expected: service.RedirectTo("/login")},
		{name: "kitchen_on_admin_route", session: kitchen, required: []domain.Role{domain.RoleAdmin}, expected: service.RedirectTo("/")},
		{name: "kitchen_on_shared_route", session: kitchen, required: []domain.Role{domain.RoleAdmin, domain.RoleKitchen}, expected: service.Allow},
		{name: "admin_on_admin_route", session: admin, required: []domain.Role{domain.RoleAdmin}, expected: service.Allow},
		{name: "admin_on_kitchen_route", session: admin, required: []domain.Role{domain.RoleKitchen}, expected: service.RedirectTo("/")},
		{name: "any_authenticated", session: roleless, expected: service.Allow},
		{name: "roleless_on_admin_route", session: roleless, required: []domain.Role{domain.RoleAdmin}, expected: service.RedirectTo("/")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			decision := service.Authorize(testCase.session, testCase.required...)
			assert.Equal(t, testCase.expected, decision)
		})
	}
}

func TestParseRoutePolicy_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "missing_equals", value: "/admin"},
		{name: "relative_prefix", value: "admin=ADMIN"},
		{name: "unknown_role", value: "/admin=CHEF"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			policy, err := service.ParseRoutePolicy(testCase.value)
			assert.Error(t, err)
			assert.Nil(t, policy)
		})
	}
}

func TestRoutePolicy_LongestPrefixWins(t *testing.T) {
	policy, err := service.ParseRoutePolicy("/admin=ADMIN,KITCHEN; /admin/analytics=ADMIN ;/kitchen/=KITCHEN;/account=")
	require.NoError(t, err)

	tests := []struct {
		name              string
		path              string
		expectedRoles     []domain.Role
		expectedProtected bool
	}{
		{name: "exact_prefix", path: "/admin", expectedRoles: []domain.Role{domain.RoleAdmin, domain.RoleKitchen}, expectedProtected: true},
		{name: "nested_longer_rule", path: "/admin/analytics/weekly", expectedRoles: []domain.Role{domain.RoleAdmin}, expectedProtected: true},
		{name: "segment_boundary", path: "/administrators", expectedProtected: false},
		{name: "trailing_slash_rule", path: "/kitchen/orders", expectedRoles: []domain.Role{domain.RoleKitchen}, expectedProtected: true},
		{name: "login_only", path: "/account", expectedRoles: nil, expectedProtected: true},
		{name: "public", path: "/menu", expectedProtected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			roles, protected := policy.Required(testCase.path)
			assert.Equal(t, testCase.expectedProtected, protected)
			assert.Equal(t, testCase.expectedRoles, roles)
		})
	}
}

func TestDefaultRoutePolicy(t *testing.T) {
	policy := service.DefaultRoutePolicy()
	admin := domain.Session{Token: "a", Role: domain.RoleAdmin}
	kitchen := domain.Session{Token: "k", Role: domain.RoleKitchen}

	tests := []struct {
		name     string
		session  domain.Session
		path     string
		expected service.Decision
	}{
		{name: "public_menu", session: domain.Session{}, path: "/api/menu", expected: service.Allow},
		{name: "public_cart", session: domain.Session{}, path: "/api/cart/items", expected: service.Allow},
		{name: "me_requires_login", session: domain.Session{}, path: "/api/me", expected: service.RedirectTo("/login")},
		{name: "kitchen_board", session: kitchen, path: "/api/kitchen/orders", expected: service.Allow},
		{name: "admin_not_on_kitchen_board", session: admin, path: "/api/kitchen/orders", expected: service.RedirectTo("/")},
		{name: "analytics_admin", session: admin, path: "/api/admin/analytics", expected: service.Allow},
		{name: "analytics_kitchen", session: kitchen, path: "/api/admin/analytics", expected: service.RedirectTo("/")},
		{name: "feedback_shared", session: kitchen, path: "/api/admin/feedback", expected: service.Allow},
		{name: "menu_items_kitchen", session: kitchen, path: "/api/admin/menu-items/4", expected: service.Allow},
		{name: "menu_items_admin", session: admin, path: "/api/admin/menu-items", expected: service.RedirectTo("/")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, policy.Authorize(testCase.session, testCase.path))
		})
	}
}
