package employees

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// Employee statuses
const (
	StatusActive  = "100"
	StatusOnLeave = "200"
	StatusRetired = "300"
)

// Flag values of incentive_yn and marketer_yn
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// Errors
var (
	ErrEmployeeNotFound      = apperrors.NotFound("EMPLOYEE_NOT_FOUND", "employee not found")
	ErrEmployeeAlreadyExists = apperrors.BadRequest("EMPLOYEE_ALREADY_EXISTS", "employee already exists")
)

// Employee is a member of staff. The JSON form is the history snapshot format.
type Employee struct {
	Seq             uint        `json:"seq"`
	PositionSeq     *uint       `json:"position_seq"`
	RankSeq         *uint       `json:"rank_seq"`
	OrganizationSeq *uint       `json:"organization_seq"`
	Status          string      `json:"status"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	PhoneNumber     string      `json:"phone_number"`
	ExtensionNumber string      `json:"extension_number"`
	HireDate        shared.Date `json:"hire_date"`
	BirthDate       shared.Date `json:"birth_date"`
	IncentiveYN     string      `json:"incentive_yn"`
	MarketerYN      string      `json:"marketer_yn"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	DeletedAt       *time.Time  `json:"deleted_at"`
}

// CreateEmployee is the command registering an Employee.
type CreateEmployee struct {
	PositionSeq     *uint        `json:"position_seq"`
	RankSeq         *uint        `json:"rank_seq"`
	OrganizationSeq *uint        `json:"organization_seq"`
	Status          string       `json:"status" validate:"omitempty,oneof=100 200 300"`
	Name            string       `json:"name" validate:"required,max=100"`
	Email           string       `json:"email" validate:"required,email,max=100"`
	PhoneNumber     string       `json:"phone_number" validate:"required,max=20"`
	ExtensionNumber string       `json:"extension_number" validate:"required,max=10"`
	HireDate        *shared.Date `json:"hire_date" validate:"required"`
	BirthDate       *shared.Date `json:"birth_date" validate:"required"`
	IncentiveYN     string       `json:"incentive_yn" validate:"omitempty,yn"`
	MarketerYN      string       `json:"marketer_yn" validate:"omitempty,yn"`
}

// Validate for validating CreateEmployee struct
func (c *CreateEmployee) Validate() error {
	return validators.Struct(c)
}

// ToEmployee builds the Employee with defaults for omitted codes.
func (c *CreateEmployee) ToEmployee() *Employee {
	e := &Employee{
		PositionSeq:     c.PositionSeq,
		RankSeq:         c.RankSeq,
		OrganizationSeq: c.OrganizationSeq,
		Status:          c.Status,
		Name:            c.Name,
		Email:           c.Email,
		PhoneNumber:     c.PhoneNumber,
		ExtensionNumber: c.ExtensionNumber,
		IncentiveYN:     c.IncentiveYN,
		MarketerYN:      c.MarketerYN,
	}
	if c.HireDate != nil {
		e.HireDate = *c.HireDate
	}
	if c.BirthDate != nil {
		e.BirthDate = *c.BirthDate
	}
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.IncentiveYN == "" {
		e.IncentiveYN = FlagNo
	}
	if e.MarketerYN == "" {
		e.MarketerYN = FlagNo
	}
	return e
}

// UpdateEmployee is a partial update. Email and status must always be sent.
type UpdateEmployee struct {
	PositionSeq     *uint        `json:"position_seq"`
	RankSeq         *uint        `json:"rank_seq"`
	OrganizationSeq *uint        `json:"organization_seq"`
	Status          *string      `json:"status" validate:"required,oneof=100 200 300"`
	Name            *string      `json:"name" validate:"omitempty,min=1,max=100"`
	Email           *string      `json:"email" validate:"required,email,max=100"`
	PhoneNumber     *string      `json:"phone_number" validate:"omitempty,max=20"`
	ExtensionNumber *string      `json:"extension_number" validate:"omitempty,max=10"`
	HireDate        *shared.Date `json:"hire_date"`
	BirthDate       *shared.Date `json:"birth_date"`
	IncentiveYN     *string      `json:"incentive_yn" validate:"omitempty,yn"`
	MarketerYN      *string      `json:"marketer_yn" validate:"omitempty,yn"`
}

// Validate for validating UpdateEmployee struct
func (u *UpdateEmployee) Validate() error {
	return validators.Struct(u)
}

// IsEmpty reports whether the patch sets no field at all.
func (u *UpdateEmployee) IsEmpty() bool {
	return u.PositionSeq == nil && u.RankSeq == nil && u.OrganizationSeq == nil &&
		u.Status == nil && u.Name == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.ExtensionNumber == nil && u.HireDate == nil && u.BirthDate == nil &&
		u.IncentiveYN == nil && u.MarketerYN == nil
}

// ApplyTo copies every set field onto e.
func (u *UpdateEmployee) ApplyTo(e *Employee) {
	if u.PositionSeq != nil {
		e.PositionSeq = u.PositionSeq
	}
	if u.RankSeq != nil {
		e.RankSeq = u.RankSeq
	}
	if u.OrganizationSeq != nil {
		e.OrganizationSeq = u.OrganizationSeq
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		e.PhoneNumber = *u.PhoneNumber
	}
	if u.ExtensionNumber != nil {
		e.ExtensionNumber = *u.ExtensionNumber
	}
	if u.HireDate != nil {
		e.HireDate = *u.HireDate
	}
	if u.BirthDate != nil {
		e.BirthDate = *u.BirthDate
	}
	if u.IncentiveYN != nil {
		e.IncentiveYN = *u.IncentiveYN
	}
	if u.MarketerYN != nil {
		e.MarketerYN = *u.MarketerYN
	}
}
