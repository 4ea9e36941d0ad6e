package sqlstore

import (
	"context"

	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"
	"bazaar/internal/infra/persistence/sqlstore/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stateRepository implements the domain.StateRepository interface.
type stateRepository struct {
	q *query.Query
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{
		q: query.Use(db),
	}
}

func (repo *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	row, err := repo.q.StateBlobModel.WithContext(ctx).
		Where(repo.q.StateBlobModel.Key.Eq(key)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrapf(err, "failed to load state %s", key)
	}

	return row.Data, nil
}

// Save upserts the blob for key.
func (repo *stateRepository) Save(ctx context.Context, key string, data []byte) error {
	row := &model.StateBlobModel{Key: key, Data: data}
	err := repo.q.StateBlobModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(row)
	if err != nil {
		return errors.Wrapf(err, "failed to save state %s", key)
	}

	return nil
}

func (repo *stateRepository) Delete(ctx context.Context, key string) error {
	_, err := repo.q.StateBlobModel.WithContext(ctx).
		Where(repo.q.StateBlobModel.Key.Eq(key)).
		Delete()
	if err != nil {
		return errors.Wrapf(err, "failed to delete state %s", key)
	}

	return nil
}
