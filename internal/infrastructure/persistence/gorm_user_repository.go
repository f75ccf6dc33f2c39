package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	crud crudRepository[models.UserModel]
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		crud: newCrudRepository[models.UserModel](db, logger, "user"),
	}, nil
}

func (r *gormUserRepository) List(ctx context.Context, query *shared.PageQuery) ([]*users.User, error) {
	modelList, err := r.crud.list(ctx, query)
	if err != nil {
		return nil, err
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx)
}

func (r *gormUserRepository) GetBySeq(ctx context.Context, seq uint) (*users.User, error) {
	model, err := r.crud.bySeq(ctx, seq)
	if err != nil {
		return nil, notFound(err, users.ErrUserNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	model, err := r.crud.first(ctx, "username = ?", username)
	if err != nil {
		return nil, notFound(err, users.ErrUserNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	model, err := r.crud.first(ctx, "email = ?", email)
	if err != nil {
		return nil, notFound(err, users.ErrUserNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.crud.create(ctx, model); err != nil {
		return duplicate(err, users.ErrUserAlreadyExists)
	}

	*user = *model.ToDomain()
	r.crud.log(ctx).Info("Created user with seq ", user.Seq)
	return nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *users.User) error {
	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.crud.save(ctx, model); err != nil {
		return duplicate(err, users.ErrUserAlreadyExists)
	}

	*user = *model.ToDomain()
	r.crud.log(ctx).Info("Updated user with seq ", user.Seq)
	return nil
}

func (r *gormUserRepository) UpdateRefreshToken(ctx context.Context, seq uint, token *string) error {
	result := r.crud.conn(ctx).Model(&models.UserModel{}).Where("seq = ?", seq).Update("current_refresh_token", token)
	if result.Error != nil {
		return fmt.Errorf("failed to update refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

func (r *gormUserRepository) Delete(ctx context.Context, seq uint) error {
	return notFound(r.crud.delete(ctx, seq), users.ErrUserNotFound)
}

func (r *gormUserRepository) SoftDelete(ctx context.Context, seq uint, at time.Time) error {
	return notFound(r.crud.softDelete(ctx, seq, at), users.ErrUserNotFound)
}
