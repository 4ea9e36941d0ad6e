// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents which marketplace experience a user is signed into.
type Role string

const (
	// RoleCustomer indicates a shopper.
	RoleCustomer Role = "customer"
	// RoleStore indicates a store owner.
	RoleStore Role = "store"
	// RoleDelivery indicates a delivery partner.
	RoleDelivery Role = "delivery"
)

// AllRoles lists every role in display order.
var AllRoles = Roles{RoleCustomer, RoleStore, RoleDelivery}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStore, RoleDelivery:
		return true
	default:
		return false
	}
}

// Segment is the route group name of the role's area, e.g. "(store)".
func (r Role) Segment() string {
	return "(" + string(r) + ")"
}

// Area is the navigation path of the role's area, e.g. "/(store)".
func (r Role) Area() string {
	return "/" + r.Segment()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RoleFromSegment maps a route group segment such as "(delivery)" back to its role.
func RoleFromSegment(segment string) (Role, bool) {
	for _, r := range AllRoles {
		if r.Segment() == segment {
			return r, true
		}
	}

	return "", false
}
