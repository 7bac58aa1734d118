// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deviceTokenRepository implements the repository.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// UpsertToken inserts the token or moves an existing row to the new owner and platform.
func (repo *deviceTokenRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error) {
	tokenM := fromDeviceTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "token"}},
				DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(tokenM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required device token information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	return toDeviceTokenDomain(tokenM), nil
}

// FindByToken retrieves the registration of a token.
func (repo *deviceTokenRepository) FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token")
	}

	return toDeviceTokenDomain(&tokenM), nil
}

// FindTokensByUser retrieves every token owned by the user. Reads go to the primary so that a
// token registered moments ago is visible to an immediate send.
func (repo *deviceTokenRepository) FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteToken removes the token when it is owned by userID.
func (repo *deviceTokenRepository) DeleteToken(ctx context.Context, userID uuid.UUID, token string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete device token")
	}

	return result.RowsAffected, nil
}

// DeleteTokens removes the listed tokens owned by userID.
func (repo *deviceTokenRepository) DeleteTokens(ctx context.Context, userID uuid.UUID, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND token IN ?", userID, tokens).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete device tokens")
	}

	return result.RowsAffected, nil
}

// DeleteAllUserTokens removes every token owned by userID.
func (repo *deviceTokenRepository) DeleteAllUserTokens(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete all device tokens of user")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  entity.Platform(data.Platform),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  string(data.Platform),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
