package persistence

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRetryDelay = time.Second

// PersisterParams defines the dependencies of the persister.
type PersisterParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Repo      repository.StateRepository
	TxManager repository.TransactionManager
	Bindings  []Binding
	Logger    *slog.Logger
}

// Persister restores containers on start and writes their snapshots behind
// the callers' backs. A failed write is logged and requeued unless a newer
// snapshot for the key is already pending; it is retried after retryDelay,
// on the next change or by the final flush on Stop.
type Persister struct {
	repo         repository.StateRepository
	txManager    repository.TransactionManager
	bindings     []Binding
	writeTimeout time.Duration
	retryDelay   time.Duration
	now          func() time.Time
	logger       *slog.Logger

	mu      sync.Mutex
	pending map[string]any
	kick    chan struct{}
	done    chan struct{}
	stopped chan struct{}

	unsubscribe []func()
}

// NewPersister is the constructor for Persister. It hooks Start and Stop
// into the application lifecycle.
func NewPersister(params PersisterParams) *Persister {
	p := &Persister{
		repo:         params.Repo,
		txManager:    params.TxManager,
		bindings:     params.Bindings,
		writeTimeout: params.Config.Storage.WriteTimeout,
		retryDelay:   defaultRetryDelay,
		now:          time.Now,
		logger:       params.Logger,
		pending:      make(map[string]any),
		kick:         make(chan struct{}, 1),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
	if p.writeTimeout <= 0 {
		p.writeTimeout = lifecycle.DefaultTimeout
	}

	params.Append(fx.Hook{
		OnStart: p.Start,
		OnStop:  p.Stop,
	})

	return p
}

// Start restores every bound container, subscribes to changes and starts the writer.
func (p *Persister) Start(ctx context.Context) error {
	for _, b := range p.bindings {
		if err := p.restore(ctx, b); err != nil {
			return err
		}
	}

	for _, b := range p.bindings {
		p.unsubscribe = append(p.unsubscribe, b.subscribe(p.enqueue))
	}

	go p.run()

	p.logger.Info("Persister started", "keys", len(p.bindings))

	return nil
}

// Stop detaches from the containers and flushes pending writes before returning.
func (p *Persister) Stop(ctx context.Context) error {
	for _, unsubscribe := range p.unsubscribe {
		unsubscribe()
	}
	p.unsubscribe = nil

	close(p.done)

	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "persister flush interrupted")
	}
}

// restore loads one key. Missing, undecodable or outdated blobs leave the
// container in its initial state; only storage failures abort startup.
func (p *Persister) restore(ctx context.Context, b Binding) error {
	blob, err := p.repo.Load(ctx, b.Key())
	if errors.Is(err, repository.ErrStateNotFound) {
		p.logger.Debug("No saved state", "key", b.Key())

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "load %s", b.Key())
	}

	if err := b.restore(blob); err != nil {
		p.logger.Warn("Discarding saved state", "key", b.Key(), "error", err)
		if delErr := p.repo.Delete(ctx, b.Key()); delErr != nil {
			p.logger.Warn("Failed to delete discarded state", "key", b.Key(), "error", delErr)
		}

		return nil
	}

	p.logger.Debug("Restored state", "key", b.Key())

	return nil
}

// enqueue records the latest state for key. It never blocks on storage.
func (p *Persister) enqueue(key string, state any) {
	p.mu.Lock()
	p.pending[key] = state
	p.mu.Unlock()

	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.stopped)

	var retry <-chan time.Time
	for {
		select {
		case <-p.kick:
			retry = p.flushOrRetry()
		case <-retry:
			retry = p.flushOrRetry()
		case <-p.done:
			if err := p.flush(); err != nil {
				p.logger.Error("Dropping unsaved state on shutdown", "error", err)
			}

			return
		}
	}
}

// flushOrRetry flushes and, on failure, returns a timer for the next attempt.
func (p *Persister) flushOrRetry() <-chan time.Time {
	if err := p.flush(); err != nil {
		return time.After(p.retryDelay)
	}

	return nil
}

// requeue puts a failed batch back unless a newer snapshot arrived meanwhile.
func (p *Persister) requeue(batch map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, state := range batch {
		if _, newer := p.pending[key]; !newer {
			p.pending[key] = state
		}
	}
}

func (p *Persister) flush() error {
	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[string]any)
	p.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	keys := make([]string, 0, len(batch))
	for key := range batch {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	savedAt := p.now()
	blobs := make(map[string][]byte, len(batch))
	for _, key := range keys {
		blob, err := encodeSnapshot(batch[key], savedAt)
		if err != nil {
			p.logger.Warn("Failed to encode state", "key", key, "error", err)
			delete(batch, key)

			continue
		}
		blobs[key] = blob
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()

	err := p.txManager.Execute(ctx, func(repo repository.StateRepository) error {
		for _, key := range keys {
			blob, ok := blobs[key]
			if !ok {
				continue
			}
			if err := repo.Save(ctx, key, blob); err != nil {
				return errors.Wrapf(err, "save %s", key)
			}
		}

		return nil
	})
	if err != nil {
		p.logger.Warn("Failed to persist state", "keys", keys, "error", err)
		p.requeue(batch)

		return err
	}

	p.logger.Debug("Persisted state", "keys", keys)

	return nil
}
