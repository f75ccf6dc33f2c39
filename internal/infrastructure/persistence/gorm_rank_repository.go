package persistence

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRankRepository struct {
	crud crudRepository[models.RankModel]
}

// NewGormRankRepository creates a new GORM-based RankRepository implementation
func NewGormRankRepository(db *gorm.DB, logger logger.Logger) (ranks.RankRepository, error) {
	return &gormRankRepository{
		crud: newCrudRepository[models.RankModel](db, logger, "rank"),
	}, nil
}

func (r *gormRankRepository) List(ctx context.Context, query *shared.PageQuery) ([]*ranks.Rank, error) {
	modelList, err := r.crud.list(ctx, query)
	if err != nil {
		return nil, err
	}

	domainList := make([]*ranks.Rank, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormRankRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx)
}

func (r *gormRankRepository) GetBySeq(ctx context.Context, seq uint) (*ranks.Rank, error) {
	model, err := r.crud.bySeq(ctx, seq)
	if err != nil {
		return nil, notFound(err, ranks.ErrRankNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormRankRepository) GetByTitle(ctx context.Context, title string) (*ranks.Rank, error) {
	model, err := r.crud.first(ctx, "title = ?", title)
	if err != nil {
		return nil, notFound(err, ranks.ErrRankNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormRankRepository) Create(ctx context.Context, rank *ranks.Rank) error {
	model := &models.RankModel{}
	model.FromDomain(rank)

	if err := r.crud.create(ctx, model); err != nil {
		return duplicate(err, ranks.ErrRankAlreadyExists)
	}

	*rank = *model.ToDomain()
	r.crud.log(ctx).Info("Created rank with seq ", rank.Seq)
	return nil
}

func (r *gormRankRepository) Update(ctx context.Context, rank *ranks.Rank) error {
	model := &models.RankModel{}
	model.FromDomain(rank)

	if err := r.crud.save(ctx, model); err != nil {
		return duplicate(err, ranks.ErrRankAlreadyExists)
	}

	*rank = *model.ToDomain()
	r.crud.log(ctx).Info("Updated rank with seq ", rank.Seq)
	return nil
}

func (r *gormRankRepository) Delete(ctx context.Context, seq uint) error {
	return notFound(r.crud.delete(ctx, seq), ranks.ErrRankNotFound)
}

func (r *gormRankRepository) SoftDelete(ctx context.Context, seq uint, at time.Time) error {
	return notFound(r.crud.softDelete(ctx, seq, at), ranks.ErrRankNotFound)
}
