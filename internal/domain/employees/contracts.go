package employees

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

// EmployeeService defines the employee use cases. Every mutation records an
// employee history entry in the same transaction.
type EmployeeService interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Employee, int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Employee, error)
	Create(ctx context.Context, cmd *CreateEmployee) (*Employee, error)
	Update(ctx context.Context, seq uint, cmd *UpdateEmployee) (*Employee, error)
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint) (*Employee, error)
}

// EmployeeRepository defines the persistence operations on employees.
type EmployeeRepository interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Employee, error)
	Count(ctx context.Context) (int64, error)
	// CountActiveByOrganization counts the non deleted employees of an organization.
	CountActiveByOrganization(ctx context.Context, organizationSeq uint) (int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint, at time.Time) error
}
