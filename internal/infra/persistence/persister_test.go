package persistence

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/blobstore"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.WriteTimeout = time.Second
	cfg.Checkout.DeliveryFee = 40
	cfg.Checkout.TaxRate = 0.05

	return cfg
}

type fixedIDs struct{}

func (fixedIDs) NewID() string { return "item-1" }

func newMemRepository(t *testing.T) repository.StateRepository {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blobstore.NewStateRepository(bucket)
}

func newTestPersister(t *testing.T, repo repository.StateRepository, bindings ...Binding) *Persister {
	t.Helper()

	return NewPersister(PersisterParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    newTestConfig(),
		Repo:      repo,
		TxManager: blobstore.NewTransactionManager(repo),
		Bindings:  bindings,
		Logger:    newTestLogger(),
	})
}

func TestPersister_RestoresAndWritesBehind(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository(t)

	saved := entity.CartState{}.AddItem(entity.Product{ID: "p1", Price: decimal.NewFromInt(40)}, 2, "item-0")
	blob, err := encodeSnapshot(saved, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, repository.CartStorageKey, blob))

	cart := impl.NewCartService(impl.CartServiceParams{Config: newTestConfig(), IDs: fixedIDs{}, Logger: newTestLogger()})
	p := newTestPersister(t, repo, Bind[entity.CartState](repository.CartStorageKey, cart))

	require.NoError(t, p.Start(ctx))
	assert.Equal(t, 2, cart.TotalItems())

	cart.AddItem(entity.Product{ID: "p1", Price: decimal.NewFromInt(40)}, 1)
	require.NoError(t, p.Stop(ctx))

	stored, err := repo.Load(ctx, repository.CartStorageKey)
	require.NoError(t, err)
	restored, err := decodeSnapshot[entity.CartState](stored)
	require.NoError(t, err)
	require.Len(t, restored.Items, 1)
	assert.Equal(t, 3, restored.Items[0].Quantity)
}

func TestPersister_LogoutIsPersistedWhole(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository(t)
	auth := impl.NewAuthService(newTestLogger())
	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))
	require.NoError(t, p.Start(ctx))

	auth.SetPhoneNumber("9876543210")
	auth.Login(entity.User{ID: "u1", Role: entity.RoleCustomer})
	auth.Logout()
	require.NoError(t, p.Stop(ctx))

	stored, err := repo.Load(ctx, repository.AuthStorageKey)
	require.NoError(t, err)

	var env struct {
		Version int            `json:"version"`
		State   map[string]any `json:"state"`
	}
	require.NoError(t, json.Unmarshal(stored, &env))
	assert.Equal(t, SnapshotVersion, env.Version)
	assert.Equal(t, map[string]any{
		"isAuthenticated": false,
		"user":            nil,
		"userRole":        nil,
		"phoneNumber":     "",
	}, env.State)
}

func TestPersister_DiscardsOtherVersions(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockStateRepository(t)
	auth := impl.NewAuthService(newTestLogger())

	repo.EXPECT().Load(mock.Anything, repository.AuthStorageKey).
		Return([]byte(`{"version":0,"state":{"isAuthenticated":true}}`), nil)
	repo.EXPECT().Delete(mock.Anything, repository.AuthStorageKey).Return(nil)

	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))
	require.NoError(t, p.Start(ctx))
	require.NoError(t, p.Stop(ctx))

	assert.False(t, auth.Snapshot().IsAuthenticated)
}

func TestPersister_DiscardsCorruptBlob(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockStateRepository(t)
	cart := impl.NewCartService(impl.CartServiceParams{Config: newTestConfig(), IDs: fixedIDs{}, Logger: newTestLogger()})

	repo.EXPECT().Load(mock.Anything, repository.CartStorageKey).Return([]byte(`not json`), nil)
	repo.EXPECT().Delete(mock.Anything, repository.CartStorageKey).Return(errors.New("read-only"))

	p := newTestPersister(t, repo, Bind[entity.CartState](repository.CartStorageKey, cart))
	require.NoError(t, p.Start(ctx))
	require.NoError(t, p.Stop(ctx))

	assert.True(t, cart.Snapshot().IsEmpty())
}

func TestPersister_DiscardsSignedInSessionWithoutUser(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockStateRepository(t)
	auth := impl.NewAuthService(newTestLogger())

	repo.EXPECT().Load(mock.Anything, repository.AuthStorageKey).
		Return([]byte(`{"version":1,"state":{"isAuthenticated":true,"user":null,"userRole":"customer","phoneNumber":""}}`), nil)
	repo.EXPECT().Delete(mock.Anything, repository.AuthStorageKey).Return(nil)

	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))
	require.NoError(t, p.Start(ctx))
	require.NoError(t, p.Stop(ctx))

	assert.Equal(t, entity.AuthState{}, auth.Snapshot())
}

func TestPersister_RestoredRoleFollowsUser(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository(t)
	require.NoError(t, repo.Save(ctx, repository.AuthStorageKey,
		[]byte(`{"version":1,"state":{"isAuthenticated":true,"user":{"id":"u1","role":"store"},"userRole":"customer"}}`)))

	auth := impl.NewAuthService(newTestLogger())
	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))
	require.NoError(t, p.Start(ctx))
	require.NoError(t, p.Stop(ctx))

	state := auth.Snapshot()
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, entity.RoleStore, state.Role())
}

func TestPersister_RepairsDefaultAddressOnRestore(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepository(t)
	require.NoError(t, repo.Save(ctx, repository.UserStorageKey, []byte(`{"version":1,"state":{
		"user":{"id":"u1","addresses":[
			{"id":"a1","name":"Home","isDefault":true},
			{"id":"a2","name":"Office","isDefault":true}
		]},
		"recentSearches":["rice","rice"],
		"favoriteProducts":["p1"]
	}}`)))

	profile := impl.NewProfileService(impl.ProfileServiceParams{Config: newTestConfig(), IDs: fixedIDs{}, Logger: newTestLogger()})
	p := newTestPersister(t, repo, Bind[entity.UserState](repository.UserStorageKey, profile))
	require.NoError(t, p.Start(ctx))
	require.NoError(t, p.Stop(ctx))

	state := profile.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, 1, state.User.CountDefaults())
	def, ok := state.User.DefaultAddress()
	require.True(t, ok)
	assert.Equal(t, "a1", def.ID)
	assert.Equal(t, []string{"rice"}, state.RecentSearches)
}

func TestPersister_StartFailsOnStorageError(t *testing.T) {
	repo := mockRepo.NewMockStateRepository(t)
	auth := impl.NewAuthService(newTestLogger())

	repo.EXPECT().Load(mock.Anything, repository.AuthStorageKey).Return(nil, errors.New("disk gone"))

	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))

	require.Error(t, p.Start(context.Background()))
}

func TestPersister_WriteFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockStateRepository(t)
	auth := impl.NewAuthService(newTestLogger())

	repo.EXPECT().Load(mock.Anything, repository.AuthStorageKey).Return(nil, repository.ErrStateNotFound)
	repo.EXPECT().Save(mock.Anything, repository.AuthStorageKey, mock.Anything).Return(errors.New("full"))

	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))
	require.NoError(t, p.Start(ctx))

	state := auth.SetUserRole(entity.RoleStore)
	require.NoError(t, p.Stop(ctx))

	assert.Equal(t, entity.RoleStore, state.Role())
	assert.Equal(t, entity.RoleStore, auth.Snapshot().Role())
}

func TestPersister_RetriesFailedWrite(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockStateRepository(t)
	auth := impl.NewAuthService(newTestLogger())

	failed := make(chan struct{})
	var saved []byte
	repo.EXPECT().Load(mock.Anything, repository.AuthStorageKey).Return(nil, repository.ErrStateNotFound)
	repo.EXPECT().Save(mock.Anything, repository.AuthStorageKey, mock.Anything).
		Run(func(context.Context, string, []byte) { close(failed) }).
		Return(errors.New("busy")).Once()
	repo.EXPECT().Save(mock.Anything, repository.AuthStorageKey, mock.Anything).
		Run(func(_ context.Context, _ string, blob []byte) { saved = blob }).
		Return(nil).Once()

	p := newTestPersister(t, repo, Bind[entity.AuthState](repository.AuthStorageKey, auth))
	p.retryDelay = time.Hour
	require.NoError(t, p.Start(ctx))

	auth.SetUserRole(entity.RoleDelivery)
	<-failed
	require.NoError(t, p.Stop(ctx))

	require.NotNil(t, saved)
	state, err := decodeSnapshot[entity.AuthState](saved)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDelivery, state.Role())
}

func TestPersister_RequeueKeepsNewerSnapshot(t *testing.T) {
	p := newTestPersister(t, newMemRepository(t))

	older := entity.AuthState{}.SetPhoneNumber("1111111111")
	newer := entity.AuthState{}.SetPhoneNumber("2222222222")
	p.enqueue(repository.AuthStorageKey, newer)
	p.requeue(map[string]any{
		repository.AuthStorageKey: older,
		repository.CartStorageKey: entity.CartState{},
	})

	assert.Equal(t, newer, p.pending[repository.AuthStorageKey])
	assert.Contains(t, p.pending, repository.CartStorageKey)
}

func TestSnapshotEnvelope(t *testing.T) {
	savedAt := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	blob, err := encodeSnapshot(entity.StoreSettingsState{CurrentStore: entity.DefaultStore()}, savedAt)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(blob, &env))
	assert.Equal(t, SnapshotVersion, env.Version)
	assert.True(t, savedAt.Equal(env.SavedAt))

	state, err := decodeSnapshot[entity.StoreSettingsState](blob)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStore(), state.CurrentStore)

	_, err = decodeSnapshot[entity.StoreSettingsState]([]byte(`{"version":1}`))
	require.Error(t, err)
}
