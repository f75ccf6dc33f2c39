package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOrganizationRepository struct {
	crud crudRepository[models.OrganizationModel]
}

// NewGormOrganizationRepository creates a new GORM-based OrganizationRepository implementation
func NewGormOrganizationRepository(db *gorm.DB, logger logger.Logger) (organizations.OrganizationRepository, error) {
	return &gormOrganizationRepository{
		crud: newCrudRepository[models.OrganizationModel](db, logger, "organization"),
	}, nil
}

func filterOrganizations(query *organizations.OrganizationQuery) scope {
	return func(db *gorm.DB) *gorm.DB {
		if query.Level != nil {
			db = db.Where("level = ?", *query.Level)
		}
		if query.ParentSeq != nil {
			db = db.Where("parent_seq = ?", *query.ParentSeq)
		}
		return db
	}
}

func (r *gormOrganizationRepository) List(ctx context.Context, query *organizations.OrganizationQuery) ([]*organizations.Organization, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	modelList, err := r.crud.list(ctx, &query.PageQuery, filterOrganizations(query))
	if err != nil {
		return nil, err
	}
	return toOrganizations(modelList), nil
}

func (r *gormOrganizationRepository) Count(ctx context.Context, query *organizations.OrganizationQuery) (int64, error) {
	return r.crud.count(ctx, filterOrganizations(query))
}

// All returns every organization ordered by level and seq
func (r *gormOrganizationRepository) All(ctx context.Context) ([]*organizations.Organization, error) {
	var modelList []*models.OrganizationModel
	if err := r.crud.conn(ctx).Order("level ASC").Order("seq ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}
	return toOrganizations(modelList), nil
}

func (r *gormOrganizationRepository) GetBySeq(ctx context.Context, seq uint) (*organizations.Organization, error) {
	model, err := r.crud.bySeq(ctx, seq)
	if err != nil {
		return nil, notFound(err, organizations.ErrOrganizationNotFound)
	}
	return model.ToDomain(), nil
}

// HasChildren reports whether a live organization names seq as its parent
func (r *gormOrganizationRepository) HasChildren(ctx context.Context, seq uint) (bool, error) {
	var total int64
	err := r.crud.conn(ctx).Model(&models.OrganizationModel{}).
		Where("parent_seq = ? AND deleted_at IS NULL", seq).
		Count(&total).Error
	if err != nil {
		return false, fmt.Errorf("failed to count sub organizations of %d: %w", seq, err)
	}
	return total > 0, nil
}

func (r *gormOrganizationRepository) Create(ctx context.Context, organization *organizations.Organization) error {
	model := &models.OrganizationModel{}
	model.FromDomain(organization)

	if err := r.crud.create(ctx, model); err != nil {
		return err
	}

	*organization = *model.ToDomain()
	r.crud.log(ctx).Info("Created organization with seq ", organization.Seq)
	return nil
}

func (r *gormOrganizationRepository) Update(ctx context.Context, organization *organizations.Organization) error {
	model := &models.OrganizationModel{}
	model.FromDomain(organization)

	if err := r.crud.save(ctx, model); err != nil {
		return err
	}

	*organization = *model.ToDomain()
	r.crud.log(ctx).Info("Updated organization with seq ", organization.Seq)
	return nil
}

func (r *gormOrganizationRepository) Delete(ctx context.Context, seq uint) error {
	return notFound(r.crud.delete(ctx, seq), organizations.ErrOrganizationNotFound)
}

func (r *gormOrganizationRepository) SoftDelete(ctx context.Context, seq uint, at time.Time) error {
	return notFound(r.crud.softDelete(ctx, seq, at), organizations.ErrOrganizationNotFound)
}

func toOrganizations(modelList []*models.OrganizationModel) []*organizations.Organization {
	domainList := make([]*organizations.Organization, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
