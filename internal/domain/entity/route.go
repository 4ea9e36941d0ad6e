package entity

import "strings"

// RoleSelectionPath is where sessions without a usable role are sent.
const RoleSelectionPath = "/role-selection"

// RouteKind classifies a navigation path for the guard.
type RouteKind int

const (
	// RouteOther is any screen outside the role areas and the sign-in flow.
	RouteOther RouteKind = iota
	// RouteRoleScoped is inside a role's area, e.g. "/(store)/inventory".
	RouteRoleScoped
	// RouteAuthFlow is one of the sign-in screens.
	RouteAuthFlow
	// RouteNeutral is the splash/index entry, where the guard never redirects.
	RouteNeutral
)

// String returns a readable name for logs.
func (k RouteKind) String() string {
	switch k {
	case RouteRoleScoped:
		return "role_scoped"
	case RouteAuthFlow:
		return "auth_flow"
	case RouteNeutral:
		return "neutral"
	default:
		return "other"
	}
}

var authFlowSegments = map[string]struct{}{
	"login":            {},
	"otp-verification": {},
	"role-selection":   {},
}

// Route is a classified navigation path.
type Route struct {
	Path string
	Kind RouteKind
	// Role is set for RouteRoleScoped.
	Role Role
}

// ClassifyRoute inspects the first path segment of path.
func ClassifyRoute(path string) Route {
	route := Route{Path: path}

	trimmed := strings.Trim(path, "/")
	first, _, _ := strings.Cut(trimmed, "/")
	if i := strings.IndexAny(first, "?#"); i >= 0 {
		first = first[:i]
	}

	switch first {
	case "", "index", "splash":
		route.Kind = RouteNeutral

		return route
	}

	if role, ok := RoleFromSegment(first); ok {
		route.Kind = RouteRoleScoped
		route.Role = role

		return route
	}

	if _, ok := authFlowSegments[first]; ok {
		route.Kind = RouteAuthFlow

		return route
	}

	route.Kind = RouteOther

	return route
}

// DecideRedirect applies the navigation rules, in order:
//  1. signed out inside a role area: go to role selection
//  2. signed in inside another role's area: go to the session role's area
//  3. signed in anywhere outside role areas, sign-in and neutral screens: go to the role's area
//
// An empty string means stay. A missing role always resolves to role selection.
func DecideRedirect(route Route, auth AuthState) string {
	if !auth.IsAuthenticated {
		if route.Kind == RouteRoleScoped {
			return RoleSelectionPath
		}

		return ""
	}

	switch route.Kind {
	case RouteRoleScoped:
		if route.Role == auth.Role() {
			return ""
		}

		return areaFor(auth)
	case RouteOther:
		return areaFor(auth)
	default:
		return ""
	}
}

func areaFor(auth AuthState) string {
	role := auth.Role()
	if !role.IsValid() {
		return RoleSelectionPath
	}

	return role.Area()
}
