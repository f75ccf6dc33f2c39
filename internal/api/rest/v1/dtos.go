package v1

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// CommonResponse is the envelope of every response body
type CommonResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message *string     `json:"message"`
}

// PaginatedResponse is one page of a listing
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginatedResponse maps items with convert and computes the page count
func NewPaginatedResponse[S any, T any](items []S, total int64, query *shared.PageQuery, convert func(S) T) PaginatedResponse[T] {
	converted := make([]T, 0, len(items))
	for _, item := range items {
		converted = append(converted, convert(item))
	}
	return PaginatedResponse[T]{
		Items:      converted,
		Total:      total,
		Page:       query.Page,
		Size:       query.Size,
		TotalPages: shared.TotalPages(total, query.Size),
	}
}

// PageParams are the paging query parameters shared by every listing
type PageParams struct {
	Page   int    `form:"page,default=1"`
	Size   int    `form:"size,default=10"`
	SortBy string `form:"sort_by,default=seq"`
	Order  string `form:"order,default=asc"`
}

// ToPageQuery converts the parameters into a domain page query
func (p PageParams) ToPageQuery() *shared.PageQuery {
	return &shared.PageQuery{
		Page:   p.Page,
		Size:   p.Size,
		SortBy: p.SortBy,
		Order:  p.Order,
	}
}

// OrganizationParams are the query parameters of the organization listing
type OrganizationParams struct {
	PageParams
	Level     *int  `form:"level"`
	ParentSeq *uint `form:"parent_seq"`
}

// ToOrganizationQuery converts the parameters into a domain organization query
func (p OrganizationParams) ToOrganizationQuery() *organizations.OrganizationQuery {
	return &organizations.OrganizationQuery{
		PageQuery: *p.PageParams.ToPageQuery(),
		Level:     p.Level,
		ParentSeq: p.ParentSeq,
	}
}

// UserResponse represents a user. The password hash and refresh token are never exposed.
type UserResponse struct {
	Seq       uint       `json:"seq"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// NewUserResponse maps a user
func NewUserResponse(u *users.User) UserResponse {
	return UserResponse{
		Seq:       u.Seq,
		Username:  u.Username,
		Email:     u.Email,
		Type:      u.Type,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewTokenResponse maps a token pair
func NewTokenResponse(pair *auth.TokenPair) TokenResponse {
	return TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
}

// SwaggerTokenResponse is the OAuth2 password flow response. It is not wrapped in CommonResponse.
type SwaggerTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RefreshTokenRequest carries the refresh token exchanged for a new access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest identifies the session to revoke
type LogoutRequest struct {
	Username     string `json:"username" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// MoveOrganizationRequest names the new parent of an organization
type MoveOrganizationRequest struct {
	NewParentSeq *uint `json:"new_parent_seq" validate:"required"`
}

// EmployeeResponse represents an employee
type EmployeeResponse struct {
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

// NewEmployeeResponse maps an employee
func NewEmployeeResponse(e *employees.Employee) EmployeeResponse {
	return EmployeeResponse(*e)
}

// OrganizationResponse represents an organization. Children is only set by the hierarchy endpoint.
type OrganizationResponse struct {
	Seq       uint                   `json:"seq"`
	Name      string                 `json:"name"`
	Level     int                    `json:"level"`
	ParentSeq *uint                  `json:"parent_seq"`
	IsVisible bool                   `json:"is_visible"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt *time.Time             `json:"deleted_at"`
	Children  []OrganizationResponse `json:"children"`
}

// NewOrganizationResponse maps an organization and, recursively, its children
func NewOrganizationResponse(o *organizations.Organization) OrganizationResponse {
	response := OrganizationResponse{
		Seq:       o.Seq,
		Name:      o.Name,
		Level:     o.Level,
		ParentSeq: o.ParentSeq,
		IsVisible: o.IsVisible,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		DeletedAt: o.DeletedAt,
	}
	if o.Children != nil {
		response.Children = make([]OrganizationResponse, 0, len(o.Children))
		for _, child := range o.Children {
			response.Children = append(response.Children, NewOrganizationResponse(child))
		}
	}
	return response
}

// PositionResponse represents a position
type PositionResponse struct {
	Seq         uint       `json:"seq"`
	Title       string     `json:"title"`
	RoleSeq     *uint      `json:"role_seq"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// NewPositionResponse maps a position
func NewPositionResponse(p *positions.Position) PositionResponse {
	return PositionResponse{
		Seq:         p.Seq,
		Title:       p.Title,
		RoleSeq:     p.RoleSeq,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
}

// RankResponse represents a rank
type RankResponse struct {
	Seq         uint       `json:"seq"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// NewRankResponse maps a rank
func NewRankResponse(r *ranks.Rank) RankResponse {
	return RankResponse{
		Seq:         r.Seq,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeletedAt:   r.DeletedAt,
	}
}

// EmployeeHistoryResponse represents an employee history entry
type EmployeeHistoryResponse struct {
	Seq         uint      `json:"seq"`
	EmployeeSeq uint      `json:"employee_seq"`
	ActionType  string    `json:"action_type"`
	BeforeValue *string   `json:"before_value"`
	AfterValue  *string   `json:"after_value"`
	Username    *string   `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEmployeeHistoryResponse maps an employee history entry
func NewEmployeeHistoryResponse(e *history.Entry) interface{} {
	return EmployeeHistoryResponse{
		Seq:         e.Seq,
		EmployeeSeq: e.TargetSeq,
		ActionType:  e.ActionType,
		BeforeValue: e.BeforeValue,
		AfterValue:  e.AfterValue,
		Username:    e.Username,
		CreatedAt:   e.CreatedAt,
	}
}

// OrganizationHistoryResponse represents an organization history entry
type OrganizationHistoryResponse struct {
	Seq             uint      `json:"seq"`
	OrganizationSeq uint      `json:"organization_seq"`
	ActionType      string    `json:"action_type"`
	BeforeValue     *string   `json:"before_value"`
	AfterValue      *string   `json:"after_value"`
	Username        *string   `json:"username"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewOrganizationHistoryResponse maps an organization history entry
func NewOrganizationHistoryResponse(e *history.Entry) interface{} {
	return OrganizationHistoryResponse{
		Seq:             e.Seq,
		OrganizationSeq: e.TargetSeq,
		ActionType:      e.ActionType,
		BeforeValue:     e.BeforeValue,
		AfterValue:      e.AfterValue,
		Username:        e.Username,
		CreatedAt:       e.CreatedAt,
	}
}
