package models

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
)

// PositionModel is the GORM database model for positions
type PositionModel struct {
	Seq         uint       `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	RoleSeq     *uint      `gorm:"index"`
	Description *string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PositionModel) TableName() string {
	return "position"
}

// ToDomain converts GORM model to domain entity
func (m *PositionModel) ToDomain() *positions.Position {
	return &positions.Position{
		Seq:         m.Seq,
		Title:       m.Title,
		RoleSeq:     m.RoleSeq,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PositionModel) FromDomain(p *positions.Position) {
	m.Seq = p.Seq
	m.Title = p.Title
	m.RoleSeq = p.RoleSeq
	m.Description = p.Description
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.DeletedAt = p.DeletedAt
}

// RankModel is the GORM database model for ranks
type RankModel struct {
	Seq         uint       `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (RankModel) TableName() string {
	return "rank"
}

// ToDomain converts GORM model to domain entity
func (m *RankModel) ToDomain() *ranks.Rank {
	return &ranks.Rank{
		Seq:         m.Seq,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RankModel) FromDomain(r *ranks.Rank) {
	m.Seq = r.Seq
	m.Title = r.Title
	m.Description = r.Description
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
	m.DeletedAt = r.DeletedAt
}
