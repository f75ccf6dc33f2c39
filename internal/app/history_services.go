package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/shared"
)

type historyRecorder struct {
	historyRepo history.HistoryRepository
	now         func() time.Time
}

// NewHistoryRecorder creates a Recorder appending entries to historyRepo
func NewHistoryRecorder(historyRepo history.HistoryRepository) (history.Recorder, error) {
	return &historyRecorder{historyRepo: historyRepo, now: nowUTC}, nil
}

// Record snapshots before and after and stores them with the acting user.
func (r *historyRecorder) Record(ctx context.Context, action string, targetSeq uint, before, after interface{}) error {
	beforeValue, err := history.Snapshot(before)
	if err != nil {
		return err
	}
	afterValue, err := history.Snapshot(after)
	if err != nil {
		return err
	}

	entry := &history.Entry{
		TargetSeq:   targetSeq,
		ActionType:  action,
		BeforeValue: beforeValue,
		AfterValue:  afterValue,
		CreatedAt:   r.now(),
	}
	if username, ok := shared.ActorFrom(ctx); ok {
		entry.Username = &username
	}
	return r.historyRepo.Create(ctx, entry)
}

// historyService implements the HistoryService interface for one audited entity
type historyService struct {
	historyRepo history.HistoryRepository
}

// NewHistoryService creates a new historyService instance
func NewHistoryService(historyRepo history.HistoryRepository) (history.HistoryService, error) {
	return &historyService{historyRepo: historyRepo}, nil
}

func (s *historyService) List(ctx context.Context, query *shared.PageQuery) ([]*history.Entry, int64, error) {
	return page(
		func() ([]*history.Entry, error) { return s.historyRepo.List(ctx, query) },
		func() (int64, error) { return s.historyRepo.Count(ctx) },
	)
}

func (s *historyService) GetBySeq(ctx context.Context, seq uint) (*history.Entry, error) {
	return s.historyRepo.GetBySeq(ctx, seq)
}
