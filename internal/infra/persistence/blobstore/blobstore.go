// Package blobstore keeps state blobs as objects in a gocloud bucket,
// one object per key.
package blobstore

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const objectSuffix = ".json"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on stop.
func New(params Params) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BlobURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.Storage.BlobURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Using blob state storage", slog.String("url", params.Config.Storage.BlobURL))

	return bucket, nil
}

type stateRepository struct {
	bucket *blob.Bucket
}

// NewStateRepository creates a StateRepository over bucket.
func NewStateRepository(bucket *blob.Bucket) repository.StateRepository {
	return &stateRepository{bucket: bucket}
}

func (r *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.bucket.ReadAll(ctx, key+objectSuffix)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (r *stateRepository) Save(ctx context.Context, key string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := r.bucket.WriteAll(ctx, key+objectSuffix, data, opts); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	err := r.bucket.Delete(ctx, key+objectSuffix)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// transactionManager runs writes directly: buckets have no multi-object transactions,
// so a failing batch may leave earlier keys written.
type transactionManager struct {
	repo repository.StateRepository
}

// NewTransactionManager is the constructor for the bucket TransactionManager.
func NewTransactionManager(repo repository.StateRepository) repository.TransactionManager {
	return &transactionManager{repo: repo}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repo repository.StateRepository) error) error {
	return fn(tm.repo)
}
