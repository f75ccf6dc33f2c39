package users

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

// UserService defines the account management use cases.
type UserService interface {
	// List returns one page of users and the total number of users.
	List(ctx context.Context, query *shared.PageQuery) ([]*User, int64, error)
	// GetBySeq returns the user or ErrUserNotFound.
	GetBySeq(ctx context.Context, seq uint) (*User, error)
	// Create hashes the password and stores a new user. Duplicate usernames or emails fail with ErrUserAlreadyExists.
	Create(ctx context.Context, cmd *CreateUser) (*User, error)
	// ChangePassword replaces the stored password hash.
	ChangePassword(ctx context.Context, seq uint, cmd *ChangePassword) (*User, error)
	// Delete removes the user row.
	Delete(ctx context.Context, seq uint) error
	// SoftDelete marks the user as deleted.
	SoftDelete(ctx context.Context, seq uint) (*User, error)
}

// UserRepository defines the persistence operations on users.
type UserRepository interface {
	List(ctx context.Context, query *shared.PageQuery) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	GetBySeq(ctx context.Context, seq uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdateRefreshToken(ctx context.Context, seq uint, token *string) error
	Delete(ctx context.Context, seq uint) error
	SoftDelete(ctx context.Context, seq uint, at time.Time) error
}
