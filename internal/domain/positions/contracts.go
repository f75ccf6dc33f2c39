package positions

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

// PositionService defines the position use cases.
type PositionService interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Position, int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Position, error)
	Create(ctx context.Context, cmd *CreatePosition) (*Position, error)
	Update(ctx context.Context, seq uint, cmd *UpdatePosition) (*Position, error)
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint) (*Position, error)
}

// PositionRepository defines the persistence operations on positions.
type PositionRepository interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Position, error)
	Count(ctx context.Context) (int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Position, error)
	GetByTitle(ctx context.Context, title string) (*Position, error)
	Create(ctx context.Context, position *Position) error
	Update(ctx context.Context, position *Position) error
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint, at time.Time) error
}
