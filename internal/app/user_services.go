package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// userService implements the UserService interface for managing accounts
type userService struct {
	userRepo   users.UserRepository
	hasher     auth.PasswordHasher
	transactor shared.Transactor
	logger     logger.Logger
	now        func() time.Time
}

// NewUserService creates a new userService instance
func NewUserService(
	userRepo users.UserRepository,
	hasher auth.PasswordHasher,
	transactor shared.Transactor,
	logger logger.Logger,
) (users.UserService, error) {
	return &userService{
		userRepo:   userRepo,
		hasher:     hasher,
		transactor: transactor,
		logger:     logger,
		now:        nowUTC,
	}, nil
}

func (s *userService) List(ctx context.Context, query *shared.PageQuery) ([]*users.User, int64, error) {
	return page(
		func() ([]*users.User, error) { return s.userRepo.List(ctx, query) },
		func() (int64, error) { return s.userRepo.Count(ctx) },
	)
}

func (s *userService) GetBySeq(ctx context.Context, seq uint) (*users.User, error) {
	return s.userRepo.GetBySeq(ctx, seq)
}

// Create registers a user with a bcrypt hashed password. Usernames are unique.
func (s *userService) Create(ctx context.Context, cmd *users.CreateUser) (*users.User, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: hash,
		Type:     cmd.Type,
		Status:   cmd.Status,
	}
	if user.Type == "" {
		user.Type = users.TypeEmployee
	}
	if user.Status == "" {
		user.Status = users.StatusActive
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.userRepo.GetByUsername(ctx, cmd.Username)
		exists, err := found(err, users.ErrUserNotFound)
		if err != nil {
			return err
		}
		if exists {
			return users.ErrUserAlreadyExists
		}

		_, err = s.userRepo.GetByEmail(ctx, cmd.Email)
		exists, err = found(err, users.ErrUserNotFound)
		if err != nil {
			return err
		}
		if exists {
			return users.ErrUserAlreadyExists
		}
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, seq uint, cmd *users.ChangePassword) (*users.User, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	var user *users.User
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}

		user.Password, err = s.hasher.Hash(cmd.Password)
		if err != nil {
			return err
		}
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, seq uint) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetBySeq(ctx, seq); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, seq)
	})
}

func (s *userService) SoftDelete(ctx context.Context, seq uint) (*users.User, error) {
	var user *users.User
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}

		at := s.now()
		if err := s.userRepo.SoftDelete(ctx, seq, at); err != nil {
			return err
		}
		user.DeletedAt = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
