package ranks

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

// RankService defines the rank use cases.
type RankService interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Rank, int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Rank, error)
	Create(ctx context.Context, cmd *CreateRank) (*Rank, error)
	Update(ctx context.Context, seq uint, cmd *UpdateRank) (*Rank, error)
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint) (*Rank, error)
}

// RankRepository defines the persistence operations on ranks.
type RankRepository interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Rank, error)
	Count(ctx context.Context) (int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Rank, error)
	GetByTitle(ctx context.Context, title string) (*Rank, error)
	Create(ctx context.Context, rank *Rank) error
	Update(ctx context.Context, rank *Rank) error
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint, at time.Time) error
}
