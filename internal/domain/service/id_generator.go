package service

// IDGenerator defines the interface for minting identifiers for new records.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}
