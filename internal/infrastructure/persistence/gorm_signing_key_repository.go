package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/infrastructure/persistence/models"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

type gormSigningKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSigningKeyRepository creates a new GORM-based SigningKeyRepository implementation
func NewGormSigningKeyRepository(db *gorm.DB, logger logger.Logger) (keys.SigningKeyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormSigningKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSigningKeyRepository) Create(ctx context.Context, key *keys.SigningKeyMeta) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SigningKeyModel{}
	model.FromDomain(key)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create signing key: %w", err)
	}

	r.logger.Info("Created signing key metadata with id ", key.ID)
	return nil
}

func (r *gormSigningKeyRepository) List(ctx context.Context, query *keys.SigningKeyQuery) ([]*keys.SigningKeyMeta, error) {
	if query == nil {
		query = keys.NewSigningKeyQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.SigningKeyModel{})

	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.KeyPairID != "" {
		dbQuery = dbQuery.Where("key_pair_id = ?", query.KeyPairID)
	}
	if query.Format != "" {
		dbQuery = dbQuery.Where("format = ?", query.Format)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	// SortBy and SortOrder are restricted to known values by Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.SigningKeyModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch signing key metadata: %w", err)
	}

	domainList := make([]*keys.SigningKeyMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSigningKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.SigningKeyMeta, error) {
	var model models.SigningKeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", keys.ErrKeyNotFound, keyID)
		}
		return nil, fmt.Errorf("failed to fetch signing key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSigningKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.SigningKeyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete signing key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", keys.ErrKeyNotFound, keyID)
	}

	r.logger.Info("Deleted signing key metadata with id ", keyID)
	return nil
}
