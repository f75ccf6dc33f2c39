package organizations

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// Organization levels. A department sits at the root, headquarters below a
// department and teams below headquarters.
const (
	LevelDepartment   = 1
	LevelHeadquarters = 2
	LevelTeam         = 3
)

// Errors
var (
	ErrOrganizationNotFound      = apperrors.NotFound("ORGANIZATION_NOT_FOUND", "organization not found")
	ErrInvalidLevel              = apperrors.BadRequest("INVALID_ORGANIZATION_LEVEL", "invalid organization level")
	ErrSubOrganizationsExist     = apperrors.BadRequest("SUB_ORGANIZATIONS_EXIST", "organization has sub organizations and cannot be deleted")
	ErrEmployeesExist            = apperrors.BadRequest("EMPLOYEES_EXIST_IN_ORGANIZATION", "organization has employees and cannot be deleted")
	ErrDepartmentHasParent       = apperrors.BadRequest("INVALID_DEPARTMENT_PARENT", "a department (level=1) must be created without parent_seq")
	ErrMissingHeadquartersParent = apperrors.BadRequest("MISSING_HEADQUARTERS_PARENT", "headquarters (level=2) require parent_seq of a department")
	ErrInvalidDepartmentSeq      = apperrors.BadRequest("INVALID_DEPARTMENT_SEQ", "parent_seq must reference a valid department")
	ErrMissingTeamParent         = apperrors.BadRequest("MISSING_TEAM_PARENT", "a team (level=3) requires parent_seq of headquarters")
	ErrInvalidHeadquartersSeq    = apperrors.BadRequest("INVALID_HEADQUARTERS_SEQ", "parent_seq must reference valid headquarters")
	ErrInvalidParent             = apperrors.BadRequest("INVALID_PARENT", "organization cannot be moved under this parent")
)

// Organization is a node of the department / headquarters / team tree.
type Organization struct {
	Seq       uint       `json:"seq"`
	Name      string     `json:"name"`
	Level     int        `json:"level"`
	ParentSeq *uint      `json:"parent_seq"`
	IsVisible bool       `json:"is_visible"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`

	Children []*Organization `json:"-"`
}

// CreateOrganization is the command creating an Organization.
type CreateOrganization struct {
	Name      string `json:"name" validate:"required,max=100"`
	Level     int    `json:"level" validate:"required,min=1,max=3"`
	ParentSeq *uint  `json:"parent_seq"`
	IsVisible *bool  `json:"is_visible"`
}

// Validate for validating CreateOrganization struct
func (c *CreateOrganization) Validate() error {
	return validators.Struct(c)
}

// ToOrganization builds the Organization, visible unless stated otherwise.
func (c *CreateOrganization) ToOrganization() *Organization {
	visible := true
	if c.IsVisible != nil {
		visible = *c.IsVisible
	}
	return &Organization{
		Name:      c.Name,
		Level:     c.Level,
		ParentSeq: c.ParentSeq,
		IsVisible: visible,
	}
}

// UpdateOrganization is a partial update of name and visibility.
type UpdateOrganization struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	IsVisible *bool   `json:"is_visible"`
}

// Validate for validating UpdateOrganization struct
func (u *UpdateOrganization) Validate() error {
	return validators.Struct(u)
}

// IsEmpty reports whether the patch sets no field.
func (u *UpdateOrganization) IsEmpty() bool {
	return u.Name == nil && u.IsVisible == nil
}

// ApplyTo copies every set field onto o.
func (u *UpdateOrganization) ApplyTo(o *Organization) {
	if u.Name != nil {
		o.Name = *u.Name
	}
	if u.IsVisible != nil {
		o.IsVisible = *u.IsVisible
	}
}

// OrganizationQuery is a page query with optional level and parent filters.
type OrganizationQuery struct {
	shared.PageQuery
	Level     *int  `json:"level" validate:"omitempty,min=1,max=3"`
	ParentSeq *uint `json:"parent_seq"`
}

// NewOrganizationQuery returns the default first page without filters.
func NewOrganizationQuery() *OrganizationQuery {
	return &OrganizationQuery{PageQuery: *shared.NewPageQuery()}
}

// Validate checks paging and filters
func (q *OrganizationQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return shared.ErrInvalidPageQuery.Wrap(err)
	}
	return nil
}
