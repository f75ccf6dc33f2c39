package models

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	Seq                 uint       `gorm:"primaryKey;autoIncrement"`
	Username            string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email               string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password            string     `gorm:"type:varchar(128);not null"`
	CurrentRefreshToken *string    `gorm:"type:varchar(512)"`
	Type                string     `gorm:"type:varchar(3);not null;default:'100'"`
	Status              string     `gorm:"type:varchar(3);not null;default:'100'"`
	CreatedAt           time.Time  `gorm:"not null"`
	UpdatedAt           time.Time  `gorm:"not null"`
	DeletedAt           *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		Seq:                 m.Seq,
		Username:            m.Username,
		Email:               m.Email,
		Password:            m.Password,
		CurrentRefreshToken: m.CurrentRefreshToken,
		Type:                m.Type,
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeletedAt:           m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.Seq = u.Seq
	m.Username = u.Username
	m.Email = u.Email
	m.Password = u.Password
	m.CurrentRefreshToken = u.CurrentRefreshToken
	m.Type = u.Type
	m.Status = u.Status
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
	m.DeletedAt = u.DeletedAt
}
