package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scope = func(*gorm.DB) *gorm.DB

// crudRepository implements the seq keyed table access shared by every
// repository. M is the GORM model type.
type crudRepository[M any] struct {
	db     *gorm.DB
	logger logger.Logger
	entity string
}

func newCrudRepository[M any](db *gorm.DB, logger logger.Logger, entity string) crudRepository[M] {
	return crudRepository[M]{db: db, logger: logger, entity: entity}
}

func (r *crudRepository[M]) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *crudRepository[M]) log(ctx context.Context) logger.Logger {
	return logger.FromContext(ctx, r.logger)
}

func (r *crudRepository[M]) list(ctx context.Context, query *shared.PageQuery, scopes ...scope) ([]*M, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var model M
	dbQuery := r.conn(ctx).Model(&model).Scopes(scopes...)

	dbQuery, err := orderBy(dbQuery, &model, query)
	if err != nil {
		return nil, err
	}

	var modelList []*M
	if err := dbQuery.Offset(query.Offset()).Limit(query.Size).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s list: %w", r.entity, err)
	}
	return modelList, nil
}

func (r *crudRepository[M]) count(ctx context.Context, scopes ...scope) (int64, error) {
	var model M
	var total int64
	if err := r.conn(ctx).Model(&model).Scopes(scopes...).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", r.entity, err)
	}
	return total, nil
}

func (r *crudRepository[M]) first(ctx context.Context, query string, args ...interface{}) (*M, error) {
	var model M
	if err := r.conn(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", r.entity, err)
	}
	return &model, nil
}

func (r *crudRepository[M]) bySeq(ctx context.Context, seq uint) (*M, error) {
	return r.first(ctx, "seq = ?", seq)
}

func (r *crudRepository[M]) create(ctx context.Context, model *M) error {
	if err := r.conn(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	return nil
}

func (r *crudRepository[M]) save(ctx context.Context, model *M) error {
	if err := r.conn(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return fmt.Errorf("failed to update %s: %w", r.entity, err)
	}
	return nil
}

func (r *crudRepository[M]) delete(ctx context.Context, seq uint) error {
	var model M
	result := r.conn(ctx).Where("seq = ?", seq).Delete(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}

	r.log(ctx).Info("Deleted ", r.entity, " with seq ", seq)
	return nil
}

func (r *crudRepository[M]) softDelete(ctx context.Context, seq uint, at time.Time) error {
	var model M
	result := r.conn(ctx).Model(&model).Where("seq = ?", seq).Update("deleted_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to soft delete %s: %w", r.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}

	r.log(ctx).Info("Soft deleted ", r.entity, " with seq ", seq)
	return nil
}

// orderBy sorts by the column named in query, rejecting names that are not
// columns of model.
func orderBy(db *gorm.DB, model interface{}, query *shared.PageQuery) (*gorm.DB, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("failed to parse model schema: %w", err)
	}

	field := stmt.Schema.LookUpField(query.SortBy)
	if field == nil || field.DBName == "" {
		return nil, shared.ErrInvalidSortColumn.WithMessage(fmt.Sprintf("invalid sort column: %s", query.SortBy))
	}

	return db.Order(clause.OrderByColumn{
		Column: clause.Column{Name: field.DBName},
		Desc:   query.Order == shared.OrderDesc,
	}), nil
}

// duplicate translates a unique key violation into target.
func duplicate(err, target error) error {
	if errors.Is(err, shared.ErrDuplicate) {
		return target
	}
	return err
}

// notFound translates the repository miss into err.
func notFound(err, target error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return target
	}
	return err
}
