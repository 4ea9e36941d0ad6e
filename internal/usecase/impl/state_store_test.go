package impl

import (
	"sync"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_SnapshotIsDetached(t *testing.T) {
	store := newStateStore(entity.CartState{}, entity.CartState.Clone)
	store.update(func(s entity.CartState) entity.CartState {
		return s.AddItem(entity.Product{ID: "p1"}, 1, "i-1")
	})

	snap := store.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, store.Snapshot().Items[0].Quantity)
}

func TestStateStore_ListenersSeeEveryMutationInOrder(t *testing.T) {
	store := newStateStore(entity.CartState{}, entity.CartState.Clone)

	var seen []int
	store.Subscribe(func(s entity.CartState) { seen = append(seen, s.TotalItems()) })

	for range 3 {
		store.update(func(s entity.CartState) entity.CartState {
			return s.AddItem(entity.Product{ID: "p1"}, 1, "i-1")
		})
	}

	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestStateStore_Unsubscribe(t *testing.T) {
	store := newStateStore(entity.AuthState{}, entity.AuthState.Clone)

	calls := 0
	unsubscribe := store.Subscribe(func(entity.AuthState) { calls++ })
	store.update(entity.AuthState.Logout)
	unsubscribe()
	store.update(entity.AuthState.Logout)

	assert.Equal(t, 1, calls)
}

func TestStateStore_RestoreDoesNotNotify(t *testing.T) {
	store := newStateStore(entity.AuthState{}, entity.AuthState.Clone)
	store.Subscribe(func(entity.AuthState) { t.Fatal("listener called on restore") })

	store.Restore(entity.AuthState{}.Login(entity.User{ID: "u1", Role: entity.RoleStore}))

	assert.True(t, store.Snapshot().IsAuthenticated)
}

func TestStateStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	store := newStateStore(entity.CartState{}, entity.CartState.Clone)

	var mu sync.Mutex
	last := 0
	ordered := true
	store.Subscribe(func(s entity.CartState) {
		mu.Lock()
		defer mu.Unlock()
		if s.TotalItems() != last+1 {
			ordered = false
		}
		last = s.TotalItems()
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.update(func(s entity.CartState) entity.CartState {
				return s.AddItem(entity.Product{ID: "p1"}, 1, "i-1")
			})
		}()
	}
	wg.Wait()

	require.Len(t, store.Snapshot().Items, 1)
	assert.Equal(t, 50, store.Snapshot().TotalItems())
	assert.True(t, ordered)
}
