package models

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/history"
)

// EmployeeHistoryModel is the GORM database model for employee history rows
type EmployeeHistoryModel struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement"`
	EmployeeSeq uint      `gorm:"not null;index"`
	ActionType  string    `gorm:"type:varchar(10);not null"`
	BeforeValue *string   `gorm:"type:text"`
	AfterValue  *string   `gorm:"type:text"`
	Username    *string   `gorm:"type:varchar(50)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EmployeeHistoryModel) TableName() string {
	return "employee_history"
}

// ToDomain converts GORM model to domain entity
func (m *EmployeeHistoryModel) ToDomain() *history.Entry {
	return &history.Entry{
		Seq:         m.Seq,
		TargetSeq:   m.EmployeeSeq,
		ActionType:  m.ActionType,
		BeforeValue: m.BeforeValue,
		AfterValue:  m.AfterValue,
		Username:    m.Username,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EmployeeHistoryModel) FromDomain(e *history.Entry) {
	m.Seq = e.Seq
	m.EmployeeSeq = e.TargetSeq
	m.ActionType = e.ActionType
	m.BeforeValue = e.BeforeValue
	m.AfterValue = e.AfterValue
	m.Username = e.Username
	m.CreatedAt = e.CreatedAt
}

// OrganizationHistoryModel is the GORM database model for organization history rows
type OrganizationHistoryModel struct {
	Seq             uint      `gorm:"primaryKey;autoIncrement"`
	OrganizationSeq uint      `gorm:"not null;index"`
	ActionType      string    `gorm:"type:varchar(10);not null"`
	BeforeValue     *string   `gorm:"type:text"`
	AfterValue      *string   `gorm:"type:text"`
	Username        *string   `gorm:"type:varchar(50)"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrganizationHistoryModel) TableName() string {
	return "organization_history"
}

// ToDomain converts GORM model to domain entity
func (m *OrganizationHistoryModel) ToDomain() *history.Entry {
	return &history.Entry{
		Seq:         m.Seq,
		TargetSeq:   m.OrganizationSeq,
		ActionType:  m.ActionType,
		BeforeValue: m.BeforeValue,
		AfterValue:  m.AfterValue,
		Username:    m.Username,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrganizationHistoryModel) FromDomain(e *history.Entry) {
	m.Seq = e.Seq
	m.OrganizationSeq = e.TargetSeq
	m.ActionType = e.ActionType
	m.BeforeValue = e.BeforeValue
	m.AfterValue = e.AfterValue
	m.Username = e.Username
	m.CreatedAt = e.CreatedAt
}
