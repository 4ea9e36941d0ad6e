package entity

// Store is the storefront a store owner manages.
type Store struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	Address      string  `json:"address"`
	Distance     string  `json:"distance"`
	DeliveryTime string  `json:"deliveryTime"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
	Reviews      int     `json:"reviews" validate:"gte=0"`
	IsOpen       bool    `json:"isOpen"`
}

// DefaultStore is shown to a store owner until they configure their own.
func DefaultStore() Store {
	return Store{
		ID:           "store-1",
		Name:         "My Store",
		Description:  "A local grocery store with fresh products",
		Category:     "Grocery",
		Address:      "123 Main St, Anytown, USA",
		Distance:     "0.5 km",
		DeliveryTime: "15-20 min",
		Rating:       4.5,
		Reviews:      120,
		IsOpen:       true,
	}
}

// StoreSettingsState holds the store owner's current storefront.
type StoreSettingsState struct {
	CurrentStore Store `json:"currentStore"`
}

// SetCurrentStore replaces the storefront.
func (s StoreSettingsState) SetCurrentStore(store Store) StoreSettingsState {
	return StoreSettingsState{CurrentStore: store}
}
