// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Storage keys of the persisted containers.
const (
	AuthStorageKey          = "auth-storage"
	CartStorageKey          = "cart-storage"
	UserStorageKey          = "user-storage"
	OrderStorageKey         = "order-storage"
	StoreSettingsStorageKey = "store-settings-storage"
)

// ErrStateNotFound is returned when no blob is stored under a key.
var ErrStateNotFound = errors.New("state not found")

// StateRepository is an opaque key-value store for serialized container snapshots.
type StateRepository interface {
	// Load returns the blob stored under key, or ErrStateNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
