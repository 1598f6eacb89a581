package service

import (
	"fmt"
	"sort"
	"strings"

	"orderflow/web-svc/internal/domain"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

var Allow = Decision{Allowed: true}

func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Authorize decides from the session alone. An empty required set admits any authenticated role.
func Authorize(session domain.Session, required ...domain.Role) Decision {
	if !session.Authenticated() {
		return RedirectTo(LoginPath)
	}
	if len(required) == 0 {
		return Allow
	}
	for _, role := range required {
		switch role {
		case domain.RoleAdmin, domain.RoleKitchen:
			if session.Role == role {
				return Allow
			}
		case domain.RoleNone:
		}
	}
	return RedirectTo(HomePath)
}

type routeRule struct {
	prefix string
	roles  []domain.Role
}

// RoutePolicy maps path prefixes to the roles allowed under them. The longest matching prefix wins.
type RoutePolicy struct {
	rules []routeRule
}

// DefaultRoutePolicy grants admins the dashboard and kitchen staff the order and menu pages.
func DefaultRoutePolicy() *RoutePolicy {
	policy, _ := ParseRoutePolicy(strings.Join([]string{
		"/api/me=",
		"/api/admin=ADMIN,KITCHEN",
		"/api/admin/analytics=ADMIN",
		"/api/admin/receipts=ADMIN",
		"/api/admin/qr=ADMIN,KITCHEN",
		"/api/admin/feedback=ADMIN,KITCHEN",
		"/api/admin/orders=KITCHEN",
		"/api/admin/categories=KITCHEN",
		"/api/admin/menu-items=KITCHEN",
		"/api/kitchen=KITCHEN",
	}, ";"))
	return policy
}

// ParseRoutePolicy reads "/prefix=ROLE,ROLE;/other=ROLE". A prefix with no roles only requires a login.
func ParseRoutePolicy(value string) (*RoutePolicy, error) {
	policy := &RoutePolicy{}
	for _, chunk := range strings.Split(value, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		prefix, roleList, ok := strings.Cut(chunk, "=")
		prefix = strings.TrimSpace(prefix)
		if !ok || !strings.HasPrefix(prefix, "/") {
			return nil, fmt.Errorf("invalid route rule %q", chunk)
		}
		if len(prefix) > 1 {
			prefix = strings.TrimSuffix(prefix, "/")
		}

		rule := routeRule{prefix: prefix}
		for _, name := range strings.Split(roleList, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			role := domain.ParseRole(name)
			if role == domain.RoleNone {
				return nil, fmt.Errorf("unknown role %q in route rule %q", strings.TrimSpace(name), chunk)
			}
			rule.roles = append(rule.roles, role)
		}
		policy.rules = append(policy.rules, rule)
	}

	sort.SliceStable(policy.rules, func(i, j int) bool {
		return len(policy.rules[i].prefix) > len(policy.rules[j].prefix)
	})
	return policy, nil
}

// Required returns the roles for path and whether the path is protected at all.
func (p *RoutePolicy) Required(path string) ([]domain.Role, bool) {
	for _, rule := range p.rules {
		if matchesPrefix(path, rule.prefix) {
			return rule.roles, true
		}
	}
	return nil, false
}

func (p *RoutePolicy) Authorize(session domain.Session, path string) Decision {
	roles, protected := p.Required(path)
	if !protected {
		return Allow
	}
	return Authorize(session, roles...)
}

func matchesPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
