// Package entity contains the core business objects of the project.
package entity

// Address is a saved delivery address.
// Within one profile at most one address is the default, and exactly one is
// whenever the profile has any.
type Address struct {
	ID           string `json:"id"`                     // Identifier assigned when the address is added.
	Name         string `json:"name"`                   // A user-defined label, e.g. "Home", "Office".
	AddressLine1 string `json:"addressLine1"`           // Street and number.
	AddressLine2 string `json:"addressLine2,omitempty"` // Apartment, floor, landmark.
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	IsDefault    bool   `json:"isDefault"` // Indicates if this is the default delivery address.
}

// AddressInput is an address before it has been assigned an id.
type AddressInput struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	IsDefault    bool   `json:"isDefault"`
}

// WithID turns the input into an Address carrying id.
func (in AddressInput) WithID(id string) Address {
	return Address{
		ID:           id,
		Name:         in.Name,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		Phone:        in.Phone,
		IsDefault:    in.IsDefault,
	}
}
