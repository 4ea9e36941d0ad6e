package persistence

import (
	"bazaar/internal/usecase"
)

// Binding ties one container to its storage key.
type Binding interface {
	Key() string
	restore(blob []byte) error
	subscribe(onChange func(key string, state any)) (unsubscribe func())
}

type containerBinding[S any] struct {
	key       string
	container usecase.Container[S]
}

// Bind persists container under key.
func Bind[S any](key string, container usecase.Container[S]) Binding {
	return &containerBinding[S]{key: key, container: container}
}

func (b *containerBinding[S]) Key() string {
	return b.key
}

func (b *containerBinding[S]) restore(blob []byte) error {
	state, err := decodeSnapshot[S](blob)
	if err != nil {
		return err
	}
	b.container.Restore(state)

	return nil
}

func (b *containerBinding[S]) subscribe(onChange func(key string, state any)) func() {
	return b.container.Subscribe(func(state S) {
		onChange(b.key, state)
	})
}
