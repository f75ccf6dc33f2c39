package organizations

import (
	"context"
	"time"
)

// OrganizationService defines the organization use cases. Every mutation records
// an organization history entry in the same transaction.
type OrganizationService interface {
	List(ctx context.Context, query *OrganizationQuery) ([]*Organization, int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Organization, error)
	// Tree returns every organization nested below its parent.
	Tree(ctx context.Context) ([]*Organization, error)
	CreateDepartment(ctx context.Context, cmd *CreateOrganization) (*Organization, error)
	CreateHeadquarters(ctx context.Context, cmd *CreateOrganization) (*Organization, error)
	CreateTeam(ctx context.Context, cmd *CreateOrganization) (*Organization, error)
	Update(ctx context.Context, seq uint, cmd *UpdateOrganization) (*Organization, error)
	// Move re-parents an organization. The new parent must sit exactly one level above.
	Move(ctx context.Context, seq, newParentSeq uint) (*Organization, error)
	// Delete refuses organizations with employees or sub organizations.
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint) (*Organization, error)
}

// OrganizationRepository defines the persistence operations on organizations.
type OrganizationRepository interface {
	List(ctx context.Context, query *OrganizationQuery) ([]*Organization, error)
	Count(ctx context.Context, query *OrganizationQuery) (int64, error)
	All(ctx context.Context) ([]*Organization, error)
	GetBySeq(ctx context.Context, seq uint) (*Organization, error)
	HasChildren(ctx context.Context, seq uint) (bool, error)
	Create(ctx context.Context, organization *Organization) error
	Update(ctx context.Context, organization *Organization) error
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint, at time.Time) error
}
