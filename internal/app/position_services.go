package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// positionService implements the PositionService interface
type positionService struct {
	positionRepo positions.PositionRepository
	transactor   shared.Transactor
	logger       logger.Logger
	now          func() time.Time
}

// NewPositionService creates a new positionService instance
func NewPositionService(positionRepo positions.PositionRepository, transactor shared.Transactor, logger logger.Logger) (positions.PositionService, error) {
	return &positionService{
		positionRepo: positionRepo,
		transactor:   transactor,
		logger:       logger,
		now:          nowUTC,
	}, nil
}

func (s *positionService) List(ctx context.Context, query *shared.PageQuery) ([]*positions.Position, int64, error) {
	return page(
		func() ([]*positions.Position, error) { return s.positionRepo.List(ctx, query) },
		func() (int64, error) { return s.positionRepo.Count(ctx) },
	)
}

func (s *positionService) GetBySeq(ctx context.Context, seq uint) (*positions.Position, error) {
	return s.positionRepo.GetBySeq(ctx, seq)
}

func (s *positionService) ensureTitleFree(ctx context.Context, title string) error {
	_, err := s.positionRepo.GetByTitle(ctx, title)
	exists, err := found(err, positions.ErrPositionNotFound)
	if err != nil {
		return err
	}
	if exists {
		return positions.ErrPositionAlreadyExists
	}
	return nil
}

func (s *positionService) Create(ctx context.Context, cmd *positions.CreatePosition) (*positions.Position, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	position := &positions.Position{
		Title:       cmd.Title,
		RoleSeq:     cmd.RoleSeq,
		Description: cmd.Description,
	}
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureTitleFree(ctx, cmd.Title); err != nil {
			return err
		}
		return s.positionRepo.Create(ctx, position)
	})
	if err != nil {
		return nil, err
	}
	return position, nil
}

func (s *positionService) Update(ctx context.Context, seq uint, cmd *positions.UpdatePosition) (*positions.Position, error) {
	if cmd.IsEmpty() {
		return nil, shared.ErrNoUpdateData
	}
	if err := validate(cmd); err != nil {
		return nil, err
	}

	var position *positions.Position
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		position, err = s.positionRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		if cmd.Title != nil && *cmd.Title != position.Title {
			if err := s.ensureTitleFree(ctx, *cmd.Title); err != nil {
				return err
			}
		}

		cmd.ApplyTo(position)
		return s.positionRepo.Update(ctx, position)
	})
	if err != nil {
		return nil, err
	}
	return position, nil
}

func (s *positionService) Delete(ctx context.Context, seq uint) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.positionRepo.GetBySeq(ctx, seq); err != nil {
			return err
		}
		return s.positionRepo.Delete(ctx, seq)
	})
}

func (s *positionService) SoftDelete(ctx context.Context, seq uint) (*positions.Position, error) {
	var position *positions.Position
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		position, err = s.positionRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}

		at := s.now()
		if err := s.positionRepo.SoftDelete(ctx, seq, at); err != nil {
			return err
		}
		position.DeletedAt = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return position, nil
}
