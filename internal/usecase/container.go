// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// Container is the surface shared by every state container.
// Snapshots are deep copies; callers never hold a live reference to the state.
type Container[S any] interface {
	// Snapshot returns a copy of the current state.
	Snapshot() S

	// Subscribe registers fn to be called with the new state after every mutation.
	// Listeners run in mutation order. The returned func removes the listener.
	Subscribe(fn func(S)) (unsubscribe func())

	// Restore replaces the state from a persisted snapshot without notifying listeners.
	Restore(state S)
}
