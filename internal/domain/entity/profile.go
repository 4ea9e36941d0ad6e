package entity

import "slices"

// Profile is the address-bearing customer profile kept by the user container.
type Profile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Addresses        []Address `json:"addresses"`
	DefaultAddressID string    `json:"defaultAddressId,omitempty"`
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}

	c := *p
	c.Addresses = slices.Clone(p.Addresses)
	if c.Addresses == nil {
		c.Addresses = []Address{}
	}

	return &c
}

// FindAddress returns the address with id.
func (p *Profile) FindAddress(id string) (Address, bool) {
	if p == nil {
		return Address{}, false
	}

	idx := slices.IndexFunc(p.Addresses, func(a Address) bool { return a.ID == id })
	if idx < 0 {
		return Address{}, false
	}

	return p.Addresses[idx], true
}

// DefaultAddress returns the current default address.
func (p *Profile) DefaultAddress() (Address, bool) {
	if p == nil {
		return Address{}, false
	}

	for _, a := range p.Addresses {
		if a.IsDefault {
			return a, true
		}
	}

	return Address{}, false
}

// CountDefaults returns how many addresses carry the default flag.
func (p *Profile) CountDefaults() int {
	if p == nil {
		return 0
	}

	n := 0
	for _, a := range p.Addresses {
		if a.IsDefault {
			n++
		}
	}

	return n
}

// markDefault makes id the only default address. An id that is not present
// leaves the profile untouched.
func (p *Profile) markDefault(id string) {
	if !slices.ContainsFunc(p.Addresses, func(a Address) bool { return a.ID == id }) {
		return
	}

	for i := range p.Addresses {
		p.Addresses[i].IsDefault = p.Addresses[i].ID == id
	}
	p.DefaultAddressID = id
}

// repairDefault restores "exactly one default when non-empty", preferring the
// first address that is not avoidID.
func (p *Profile) repairDefault(avoidID string) {
	if len(p.Addresses) == 0 {
		p.DefaultAddressID = ""

		return
	}
	if p.CountDefaults() > 0 {
		// keep the first flagged address and drop any extra flags
		a, _ := p.DefaultAddress()
		p.markDefault(a.ID)

		return
	}

	candidate := p.Addresses[0].ID
	for _, a := range p.Addresses {
		if a.ID != avoidID {
			candidate = a.ID

			break
		}
	}
	p.markDefault(candidate)
}
