package usecase

import (
	"context"
)

// RouteCommitInput is sent by the shell once a route tree has mounted.
type RouteCommitInput struct {
	Path string `json:"path"`
}

// NavigationOutput reports the guard's decision for a committed route.
type NavigationOutput struct {
	Path     string `json:"path"`
	Redirect string `json:"redirect,omitempty"`
}

// NavigationUsecase is the navigation guard.
type NavigationUsecase interface {
	// RouteCommitted records path as the mounted route and applies the guard to it.
	RouteCommitted(ctx context.Context, path string) (*NavigationOutput, error)

	// CurrentRoute returns the last committed or redirected path.
	CurrentRoute() string
}
