// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/shopspring/decimal"

// User is the signed-in identity held by the session.
// Other containers receive copies, never the session's own value.
type User struct {
	ID     string  `json:"id"`               // Identifier assigned at OTP verification.
	Name   string  `json:"name"`             // Display name.
	Phone  string  `json:"phone"`            // Phone number used to sign in.
	Email  string  `json:"email"`            // Contact email.
	Role   Role    `json:"role"`             // The experience the user is currently in.
	Avatar *string `json:"avatar,omitempty"` // Optional avatar URI.
	Wallet *Wallet `json:"wallet,omitempty"` // Earnings wallet; meaningful for delivery partners.
}

// Wallet holds a delivery partner's balance.
type Wallet struct {
	Balance decimal.Decimal `json:"balance"`
}

// UserPatch carries the fields of a shallow merge into User.
// Nil fields are left untouched.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *Role   `json:"role,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Wallet *Wallet `json:"wallet,omitempty"`
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}
	if u.Wallet != nil {
		wallet := *u.Wallet
		c.Wallet = &wallet
	}

	return &c
}

// Merge returns a copy of u with every non-nil patch field applied.
func (u User) Merge(patch UserPatch) User {
	merged := *u.Clone()

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.Avatar != nil {
		avatar := *patch.Avatar
		merged.Avatar = &avatar
	}
	if patch.Wallet != nil {
		wallet := *patch.Wallet
		merged.Wallet = &wallet
	}

	return merged
}
