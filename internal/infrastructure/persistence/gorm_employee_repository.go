package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEmployeeRepository struct {
	crud crudRepository[models.EmployeeModel]
}

// NewGormEmployeeRepository creates a new GORM-based EmployeeRepository implementation
func NewGormEmployeeRepository(db *gorm.DB, logger logger.Logger) (employees.EmployeeRepository, error) {
	return &gormEmployeeRepository{
		crud: newCrudRepository[models.EmployeeModel](db, logger, "employee"),
	}, nil
}

func (r *gormEmployeeRepository) List(ctx context.Context, query *shared.PageQuery) ([]*employees.Employee, error) {
	modelList, err := r.crud.list(ctx, query)
	if err != nil {
		return nil, err
	}

	domainList := make([]*employees.Employee, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	return r.crud.count(ctx)
}

// CountActiveByOrganization counts the employees of an organization that are not soft deleted
func (r *gormEmployeeRepository) CountActiveByOrganization(ctx context.Context, organizationSeq uint) (int64, error) {
	var total int64
	err := r.crud.conn(ctx).Model(&models.EmployeeModel{}).
		Where("organization_seq = ? AND deleted_at IS NULL", organizationSeq).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count employees of organization %d: %w", organizationSeq, err)
	}
	return total, nil
}

func (r *gormEmployeeRepository) GetBySeq(ctx context.Context, seq uint) (*employees.Employee, error) {
	model, err := r.crud.bySeq(ctx, seq)
	if err != nil {
		return nil, notFound(err, employees.ErrEmployeeNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employees.Employee, error) {
	model, err := r.crud.first(ctx, "email = ?", email)
	if err != nil {
		return nil, notFound(err, employees.ErrEmployeeNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormEmployeeRepository) Create(ctx context.Context, employee *employees.Employee) error {
	model := &models.EmployeeModel{}
	model.FromDomain(employee)

	if err := r.crud.create(ctx, model); err != nil {
		return duplicate(err, employees.ErrEmployeeAlreadyExists)
	}

	*employee = *model.ToDomain()
	r.crud.log(ctx).Info("Created employee with seq ", employee.Seq)
	return nil
}

func (r *gormEmployeeRepository) Update(ctx context.Context, employee *employees.Employee) error {
	model := &models.EmployeeModel{}
	model.FromDomain(employee)

	if err := r.crud.save(ctx, model); err != nil {
		return duplicate(err, employees.ErrEmployeeAlreadyExists)
	}

	*employee = *model.ToDomain()
	r.crud.log(ctx).Info("Updated employee with seq ", employee.Seq)
	return nil
}

func (r *gormEmployeeRepository) Delete(ctx context.Context, seq uint) error {
	return notFound(r.crud.delete(ctx, seq), employees.ErrEmployeeNotFound)
}

func (r *gormEmployeeRepository) SoftDelete(ctx context.Context, seq uint, at time.Time) error {
	return notFound(r.crud.softDelete(ctx, seq, at), employees.ErrEmployeeNotFound)
}
