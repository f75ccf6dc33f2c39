package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// rankService implements the RankService interface
type rankService struct {
	rankRepo   ranks.RankRepository
	transactor shared.Transactor
	logger     logger.Logger
	now        func() time.Time
}

// NewRankService creates a new rankService instance
func NewRankService(rankRepo ranks.RankRepository, transactor shared.Transactor, logger logger.Logger) (ranks.RankService, error) {
	return &rankService{
		rankRepo:   rankRepo,
		transactor: transactor,
		logger:     logger,
		now:        nowUTC,
	}, nil
}

func (s *rankService) List(ctx context.Context, query *shared.PageQuery) ([]*ranks.Rank, int64, error) {
	return page(
		func() ([]*ranks.Rank, error) { return s.rankRepo.List(ctx, query) },
		func() (int64, error) { return s.rankRepo.Count(ctx) },
	)
}

func (s *rankService) GetBySeq(ctx context.Context, seq uint) (*ranks.Rank, error) {
	return s.rankRepo.GetBySeq(ctx, seq)
}

func (s *rankService) ensureTitleFree(ctx context.Context, title string) error {
	_, err := s.rankRepo.GetByTitle(ctx, title)
	exists, err := found(err, ranks.ErrRankNotFound)
	if err != nil {
		return err
	}
	if exists {
		return ranks.ErrRankAlreadyExists
	}
	return nil
}

func (s *rankService) Create(ctx context.Context, cmd *ranks.CreateRank) (*ranks.Rank, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	rank := &ranks.Rank{
		Title:       cmd.Title,
		Description: cmd.Description,
	}
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureTitleFree(ctx, cmd.Title); err != nil {
			return err
		}
		return s.rankRepo.Create(ctx, rank)
	})
	if err != nil {
		return nil, err
	}
	return rank, nil
}

func (s *rankService) Update(ctx context.Context, seq uint, cmd *ranks.UpdateRank) (*ranks.Rank, error) {
	if cmd.IsEmpty() {
		return nil, shared.ErrNoUpdateData
	}
	if err := validate(cmd); err != nil {
		return nil, err
	}

	var rank *ranks.Rank
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rank, err = s.rankRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		if cmd.Title != nil && *cmd.Title != rank.Title {
			if err := s.ensureTitleFree(ctx, *cmd.Title); err != nil {
				return err
			}
		}

		cmd.ApplyTo(rank)
		return s.rankRepo.Update(ctx, rank)
	})
	if err != nil {
		return nil, err
	}
	return rank, nil
}

func (s *rankService) Delete(ctx context.Context, seq uint) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.rankRepo.GetBySeq(ctx, seq); err != nil {
			return err
		}
		return s.rankRepo.Delete(ctx, seq)
	})
}

func (s *rankService) SoftDelete(ctx context.Context, seq uint) (*ranks.Rank, error) {
	var rank *ranks.Rank
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rank, err = s.rankRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}

		at := s.now()
		if err := s.rankRepo.SoftDelete(ctx, seq, at); err != nil {
			return err
		}
		rank.DeletedAt = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rank, nil
}
