package entity

import (
	"slices"
	"strings"
)

// DefaultRecentSearchLimit caps the recent search history.
const DefaultRecentSearchLimit = 10

// UserState is the profile container snapshot: saved addresses, recent
// searches (most recent first, no duplicates) and favorited product ids.
type UserState struct {
	User             *Profile `json:"user"`
	RecentSearches   []string `json:"recentSearches"`
	FavoriteProducts []string `json:"favoriteProducts"`
}

// Clone returns a deep copy of the state.
func (s UserState) Clone() UserState {
	c := UserState{
		User:             s.User.Clone(),
		RecentSearches:   slices.Clone(s.RecentSearches),
		FavoriteProducts: slices.Clone(s.FavoriteProducts),
	}
	if c.RecentSearches == nil {
		c.RecentSearches = []string{}
	}
	if c.FavoriteProducts == nil {
		c.FavoriteProducts = []string{}
	}

	return c
}

// SetUser replaces the profile; nil clears it.
func (s UserState) SetUser(profile *Profile) UserState {
	next := s.Clone()
	next.User = profile.Clone()
	if next.User != nil {
		next.User.repairDefault("")
	}

	return next
}

// AddAddress appends input under id. The first address is always the default;
// a later address marked default takes the flag from the others.
func (s UserState) AddAddress(input AddressInput, id string) UserState {
	if s.User == nil {
		return s.Clone()
	}

	next := s.Clone()
	address := input.WithID(id)
	address.IsDefault = len(next.User.Addresses) == 0 || input.IsDefault
	next.User.Addresses = append(next.User.Addresses, address)
	if address.IsDefault {
		next.User.markDefault(id)
	} else {
		next.User.repairDefault(id)
	}

	return next
}

// UpdateAddress replaces the stored address with the same id. Defaults are
// re-derived: marking it default clears the others, and clearing the flag on
// the current default hands it to the first other address.
func (s UserState) UpdateAddress(address Address) UserState {
	if s.User == nil {
		return s.Clone()
	}

	next := s.Clone()
	idx := slices.IndexFunc(next.User.Addresses, func(a Address) bool { return a.ID == address.ID })
	if idx < 0 {
		return next
	}

	next.User.Addresses[idx] = address
	if address.IsDefault {
		next.User.markDefault(address.ID)
	} else {
		next.User.repairDefault(address.ID)
	}

	return next
}

// RemoveAddress deletes the address with id. When it was the default and
// others remain, the first remaining address becomes the default.
func (s UserState) RemoveAddress(id string) UserState {
	if s.User == nil {
		return s.Clone()
	}

	next := s.Clone()
	next.User.Addresses = slices.DeleteFunc(next.User.Addresses, func(a Address) bool { return a.ID == id })
	if next.User.DefaultAddressID == id {
		next.User.DefaultAddressID = ""
	}
	next.User.repairDefault("")

	return next
}

// SetDefaultAddress makes id the single default in one pass. Unknown ids are ignored.
func (s UserState) SetDefaultAddress(id string) UserState {
	if s.User == nil {
		return s.Clone()
	}

	next := s.Clone()
	next.User.markDefault(id)

	return next
}

// AddRecentSearch moves query to the front, dropping any earlier copy, and
// keeps at most limit entries. Blank queries are ignored.
func (s UserState) AddRecentSearch(query string, limit int) UserState {
	next := s.Clone()

	query = strings.TrimSpace(query)
	if query == "" {
		return next
	}
	if limit <= 0 {
		limit = DefaultRecentSearchLimit
	}

	searches := make([]string, 0, len(next.RecentSearches)+1)
	searches = append(searches, query)
	for _, q := range next.RecentSearches {
		if q != query {
			searches = append(searches, q)
		}
	}
	if len(searches) > limit {
		searches = searches[:limit]
	}
	next.RecentSearches = searches

	return next
}

// ClearRecentSearches empties the search history.
func (s UserState) ClearRecentSearches() UserState {
	next := s.Clone()
	next.RecentSearches = []string{}

	return next
}

// ToggleFavoriteProduct removes productID from favorites if present, else adds it.
func (s UserState) ToggleFavoriteProduct(productID string) UserState {
	next := s.Clone()
	if slices.Contains(next.FavoriteProducts, productID) {
		next.FavoriteProducts = slices.DeleteFunc(next.FavoriteProducts, func(id string) bool { return id == productID })
	} else {
		next.FavoriteProducts = append(next.FavoriteProducts, productID)
	}

	return next
}

// IsFavorite reports whether productID is favorited.
func (s UserState) IsFavorite(productID string) bool {
	return slices.Contains(s.FavoriteProducts, productID)
}

// Normalize repairs a snapshot read back from storage: exactly one default
// address when there are any, and no duplicate searches or favorites.
func (s UserState) Normalize() (UserState, bool) {
	next := s.Clone()
	if next.User != nil {
		next.User.repairDefault("")
	}
	next.RecentSearches = compactUnique(next.RecentSearches)
	next.FavoriteProducts = compactUnique(next.FavoriteProducts)

	return next, true
}

func compactUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
