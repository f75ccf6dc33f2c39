//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of auth.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, credentials *auth.Credentials) (*auth.TokenPair, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, username, refreshToken string) error {
	args := m.Called(ctx, username, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) IssueAccessToken(ctx context.Context, credentials *auth.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (string, error) {
	args := m.Called(ctx, accessToken)
	return args.String(0), args.Error(1)
}

// MockUserService is a mock implementation of users.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, query *shared.PageQuery) ([]*users.User, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*users.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) GetBySeq(ctx context.Context, seq uint) (*users.User, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, cmd *users.CreateUser) (*users.User, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, seq uint, cmd *users.ChangePassword) (*users.User, error) {
	args := m.Called(ctx, seq, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, seq uint) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *MockUserService) SoftDelete(ctx context.Context, seq uint) (*users.User, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockEmployeeService is a mock implementation of employees.EmployeeService
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) List(ctx context.Context, query *shared.PageQuery) ([]*employees.Employee, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*employees.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeService) GetBySeq(ctx context.Context, seq uint) (*employees.Employee, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeService) Create(ctx context.Context, cmd *employees.CreateEmployee) (*employees.Employee, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeService) Update(ctx context.Context, seq uint, cmd *employees.UpdateEmployee) (*employees.Employee, error) {
	args := m.Called(ctx, seq, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeService) Delete(ctx context.Context, seq uint) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *MockEmployeeService) SoftDelete(ctx context.Context, seq uint) (*employees.Employee, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

// MockOrganizationService is a mock implementation of organizations.OrganizationService
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) List(ctx context.Context, query *organizations.OrganizationQuery) ([]*organizations.Organization, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*organizations.Organization), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrganizationService) GetBySeq(ctx context.Context, seq uint) (*organizations.Organization, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) Update(ctx context.Context, seq uint, cmd *organizations.UpdateOrganization) (*organizations.Organization, error) {
	args := m.Called(ctx, seq, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) Delete(ctx context.Context, seq uint) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *MockOrganizationService) SoftDelete(ctx context.Context, seq uint) (*organizations.Organization, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) Tree(ctx context.Context) ([]*organizations.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) CreateDepartment(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) CreateHeadquarters(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) CreateTeam(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

func (m *MockOrganizationService) Move(ctx context.Context, seq, newParentSeq uint) (*organizations.Organization, error) {
	args := m.Called(ctx, seq, newParentSeq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.Organization), args.Error(1)
}

// MockPositionService is a mock implementation of positions.PositionService
type MockPositionService struct {
	mock.Mock
}

func (m *MockPositionService) List(ctx context.Context, query *shared.PageQuery) ([]*positions.Position, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*positions.Position), args.Get(1).(int64), args.Error(2)
}

func (m *MockPositionService) GetBySeq(ctx context.Context, seq uint) (*positions.Position, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*positions.Position), args.Error(1)
}

func (m *MockPositionService) Create(ctx context.Context, cmd *positions.CreatePosition) (*positions.Position, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*positions.Position), args.Error(1)
}

func (m *MockPositionService) Update(ctx context.Context, seq uint, cmd *positions.UpdatePosition) (*positions.Position, error) {
	args := m.Called(ctx, seq, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*positions.Position), args.Error(1)
}

func (m *MockPositionService) Delete(ctx context.Context, seq uint) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *MockPositionService) SoftDelete(ctx context.Context, seq uint) (*positions.Position, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*positions.Position), args.Error(1)
}

// MockRankService is a mock implementation of ranks.RankService
type MockRankService struct {
	mock.Mock
}

func (m *MockRankService) List(ctx context.Context, query *shared.PageQuery) ([]*ranks.Rank, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*ranks.Rank), args.Get(1).(int64), args.Error(2)
}

func (m *MockRankService) GetBySeq(ctx context.Context, seq uint) (*ranks.Rank, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranks.Rank), args.Error(1)
}

func (m *MockRankService) Create(ctx context.Context, cmd *ranks.CreateRank) (*ranks.Rank, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranks.Rank), args.Error(1)
}

func (m *MockRankService) Update(ctx context.Context, seq uint, cmd *ranks.UpdateRank) (*ranks.Rank, error) {
	args := m.Called(ctx, seq, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranks.Rank), args.Error(1)
}

func (m *MockRankService) Delete(ctx context.Context, seq uint) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *MockRankService) SoftDelete(ctx context.Context, seq uint) (*ranks.Rank, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranks.Rank), args.Error(1)
}

// MockHistoryService is a mock implementation of history.HistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context, query *shared.PageQuery) ([]*history.Entry, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*history.Entry), args.Get(1).(int64), args.Error(2)
}

func (m *MockHistoryService) GetBySeq(ctx context.Context, seq uint) (*history.Entry, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.Entry), args.Error(1)
}
