package history

import (
	"context"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

// Recorder writes a history entry for a mutation. before and after are
// snapshotted with Snapshot; the acting user is taken from ctx.
type Recorder interface {
	Record(ctx context.Context, action string, targetSeq uint, before, after interface{}) error
}

// HistoryService reads the recorded entries of one Kind.
type HistoryService interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*Entry, int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Entry, error)
}

// HistoryRepository persists the entries of one Kind.
type HistoryRepository interface {
	Kind() Kind
	List(ctx context.Context, query *shared.PageQuery) ([]*Entry, error)
	Count(ctx context.Context) (int64, error)
	GetBySeq(ctx context.Context, seq uint) (*Entry, error)
	Create(ctx context.Context, entry *Entry) error
}
