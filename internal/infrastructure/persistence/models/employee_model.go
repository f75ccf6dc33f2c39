package models

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
)

// EmployeeModel is the GORM database model for employees
type EmployeeModel struct {
	Seq             uint       `gorm:"primaryKey;autoIncrement"`
	PositionSeq     *uint      `gorm:"index"`
	RankSeq         *uint      `gorm:"index"`
	OrganizationSeq *uint      `gorm:"index"`
	Status          string     `gorm:"type:varchar(3);not null;default:'100'"`
	Name            string     `gorm:"type:varchar(100);not null"`
	Email           string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PhoneNumber     string     `gorm:"type:varchar(20);not null"`
	ExtensionNumber string     `gorm:"type:varchar(10);not null"`
	HireDate        time.Time  `gorm:"type:date;not null"`
	BirthDate       time.Time  `gorm:"type:date;not null"`
	IncentiveYN     string     `gorm:"column:incentive_yn;type:varchar(1);not null;default:'N'"`
	MarketerYN      string     `gorm:"column:marketer_yn;type:varchar(1);not null;default:'N'"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
	DeletedAt       *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return "employee"
}

// ToDomain converts GORM model to domain entity
func (m *EmployeeModel) ToDomain() *employees.Employee {
	return &employees.Employee{
		Seq:             m.Seq,
		PositionSeq:     m.PositionSeq,
		RankSeq:         m.RankSeq,
		OrganizationSeq: m.OrganizationSeq,
		Status:          m.Status,
		Name:            m.Name,
		Email:           m.Email,
		PhoneNumber:     m.PhoneNumber,
		ExtensionNumber: m.ExtensionNumber,
		HireDate:        fromDBDate(m.HireDate),
		BirthDate:       fromDBDate(m.BirthDate),
		IncentiveYN:     m.IncentiveYN,
		MarketerYN:      m.MarketerYN,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EmployeeModel) FromDomain(e *employees.Employee) {
	m.Seq = e.Seq
	m.PositionSeq = e.PositionSeq
	m.RankSeq = e.RankSeq
	m.OrganizationSeq = e.OrganizationSeq
	m.Status = e.Status
	m.Name = e.Name
	m.Email = e.Email
	m.PhoneNumber = e.PhoneNumber
	m.ExtensionNumber = e.ExtensionNumber
	m.HireDate = toDBDate(e.HireDate)
	m.BirthDate = toDBDate(e.BirthDate)
	m.IncentiveYN = e.IncentiveYN
	m.MarketerYN = e.MarketerYN
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
	m.DeletedAt = e.DeletedAt
}
