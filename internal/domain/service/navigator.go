package service

import (
	"context"
)

// NavigationEventReplace asks the shell to replace the current route.
const NavigationEventReplace = "replace"

// NavigationEvent is pushed to the UI shell.
type NavigationEvent struct {
	Type string `json:"type"`
	Path string `json:"path"`
	From string `json:"from,omitempty"` // Route the guard evaluated
}

// Navigator defines the interface for issuing replace-navigation to the shell.
type Navigator interface {
	// Replace navigates to path without adding a history entry.
	Replace(ctx context.Context, event *NavigationEvent) error

	// Close releases any resources held by the navigator
	Close() error
}
