package persistence

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPositionRepository struct {
	crud crudRepository[models.PositionModel]
}

// NewGormPositionRepository creates a new GORM-based PositionRepository implementation
func NewGormPositionRepository(db *gorm.DB, logger logger.Logger) (positions.PositionRepository, error) {
	return &gormPositionRepository{
		crud: newCrudRepository[models.PositionModel](db, logger, "position"),
	}, nil
}

func (r *gormPositionRepository) List(ctx context.Context, query *shared.PageQuery) ([]*positions.Position, error) {
	modelList, err := r.crud.list(ctx, query)
	if err != nil {
		return nil, err
	}

	domainList := make([]*positions.Position, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPositionRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx)
}

func (r *gormPositionRepository) GetBySeq(ctx context.Context, seq uint) (*positions.Position, error) {
	model, err := r.crud.bySeq(ctx, seq)
	if err != nil {
		return nil, notFound(err, positions.ErrPositionNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormPositionRepository) GetByTitle(ctx context.Context, title string) (*positions.Position, error) {
	model, err := r.crud.first(ctx, "title = ?", title)
	if err != nil {
		return nil, notFound(err, positions.ErrPositionNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormPositionRepository) Create(ctx context.Context, position *positions.Position) error {
	model := &models.PositionModel{}
	model.FromDomain(position)

	if err := r.crud.create(ctx, model); err != nil {
		return duplicate(err, positions.ErrPositionAlreadyExists)
	}

	*position = *model.ToDomain()
	r.crud.log(ctx).Info("Created position with seq ", position.Seq)
	return nil
}

func (r *gormPositionRepository) Update(ctx context.Context, position *positions.Position) error {
	model := &models.PositionModel{}
	model.FromDomain(position)

	if err := r.crud.save(ctx, model); err != nil {
		return duplicate(err, positions.ErrPositionAlreadyExists)
	}

	*position = *model.ToDomain()
	r.crud.log(ctx).Info("Updated position with seq ", position.Seq)
	return nil
}

func (r *gormPositionRepository) Delete(ctx context.Context, seq uint) error {
	return notFound(r.crud.delete(ctx, seq), positions.ErrPositionNotFound)
}

func (r *gormPositionRepository) SoftDelete(ctx context.Context, seq uint, at time.Time) error {
	return notFound(r.crud.softDelete(ctx, seq, at), positions.ErrPositionNotFound)
}
