package persistence

import (
	"context"

	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

// historyRow is a pointer to a history model converting to and from history.Entry.
type historyRow[M any] interface {
	*M
	ToDomain() *history.Entry
	FromDomain(e *history.Entry)
}

type gormHistoryRepository[M any, P historyRow[M]] struct {
	crud crudRepository[M]
	kind history.Kind
}

// NewGormEmployeeHistoryRepository creates the HistoryRepository of employee mutations
func NewGormEmployeeHistoryRepository(db *gorm.DB, logger logger.Logger) (history.HistoryRepository, error) {
	return &gormHistoryRepository[models.EmployeeHistoryModel, *models.EmployeeHistoryModel]{
		crud: newCrudRepository[models.EmployeeHistoryModel](db, logger, "employee history"),
		kind: history.KindEmployee,
	}, nil
}

// NewGormOrganizationHistoryRepository creates the HistoryRepository of organization mutations
func NewGormOrganizationHistoryRepository(db *gorm.DB, logger logger.Logger) (history.HistoryRepository, error) {
	return &gormHistoryRepository[models.OrganizationHistoryModel, *models.OrganizationHistoryModel]{
		crud: newCrudRepository[models.OrganizationHistoryModel](db, logger, "organization history"),
		kind: history.KindOrganization,
	}, nil
}

func (r *gormHistoryRepository[M, P]) Kind() history.Kind {
	return r.kind
}

func (r *gormHistoryRepository[M, P]) List(ctx context.Context, query *shared.PageQuery) ([]*history.Entry, error) {
	modelList, err := r.crud.list(ctx, query)
	if err != nil {
		return nil, err
	}

	entries := make([]*history.Entry, len(modelList))
	for i, model := range modelList {
		entries[i] = P(model).ToDomain()
	}
	return entries, nil
}

func (r *gormHistoryRepository[M, P]) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx)
}

func (r *gormHistoryRepository[M, P]) GetBySeq(ctx context.Context, seq uint) (*history.Entry, error) {
	model, err := r.crud.bySeq(ctx, seq)
	if err != nil {
		return nil, notFound(err, history.NotFoundError(r.kind))
	}
	return P(model).ToDomain(), nil
}

func (r *gormHistoryRepository[M, P]) Create(ctx context.Context, entry *history.Entry) error {
	var model M
	P(&model).FromDomain(entry)

	if err := r.crud.create(ctx, &model); err != nil {
		return err
	}

	entry.Seq = P(&model).ToDomain().Seq
	r.crud.log(ctx).Debug("Recorded ", r.kind, " ", entry.ActionType, " for seq ", entry.TargetSeq)
	return nil
}
