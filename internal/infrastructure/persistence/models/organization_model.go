package models

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/organizations"
)

// OrganizationModel is the GORM database model for organizations
type OrganizationModel struct {
	Seq       uint       `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Level     int        `gorm:"not null;index"`
	ParentSeq *uint      `gorm:"index"`
	IsVisible bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
	DeletedAt *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrganizationModel) TableName() string {
	return "organization"
}

// ToDomain converts GORM model to domain entity
func (m *OrganizationModel) ToDomain() *organizations.Organization {
	return &organizations.Organization{
		Seq:       m.Seq,
		Name:      m.Name,
		Level:     m.Level,
		ParentSeq: m.ParentSeq,
		IsVisible: m.IsVisible,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrganizationModel) FromDomain(o *organizations.Organization) {
	m.Seq = o.Seq
	m.Name = o.Name
	m.Level = o.Level
	m.ParentSeq = o.ParentSeq
	m.IsVisible = o.IsVisible
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.DeletedAt = o.DeletedAt
}
