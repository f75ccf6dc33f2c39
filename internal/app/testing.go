//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rms/internal/infrastructure/security"
	"github.com/MGTheTrain/rms/internal/pkg/config"
	"github.com/MGTheTrain/rms/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService                users.UserService
	AuthService                auth.AuthService
	EmployeeService            employees.EmployeeService
	OrganizationService        organizations.OrganizationService
	PositionService            positions.PositionService
	RankService                ranks.RankService
	EmployeeHistoryService     history.HistoryService
	OrganizationHistoryService history.HistoryService
	Tokens                     auth.TokenProvider

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t, dbType)

	tokens, err := security.NewJWTTokenProvider(&config.JWTSettings{
		Secret:                   "integration-secret",
		Algorithm:                config.JWTAlgorithmHS256,
		ExpirationMinutes:        30,
		RefreshExpirationMinutes: 1440,
	})
	require.NoError(t, err)

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	employeeRecorder, err := NewHistoryRecorder(db.EmployeeHistoryRepo)
	require.NoError(t, err)
	organizationRecorder, err := NewHistoryRecorder(db.OrgHistoryRepo)
	require.NoError(t, err)

	s := &TestServices{Tokens: tokens, DBContext: db}

	s.UserService, err = NewUserService(db.UserRepo, hasher, db.Transactor, log)
	require.NoError(t, err)
	s.AuthService, err = NewAuthService(db.UserRepo, tokens, hasher, db.Transactor, log)
	require.NoError(t, err)
	s.EmployeeService, err = NewEmployeeService(db.EmployeeRepo, employeeRecorder, db.Transactor, log)
	require.NoError(t, err)
	s.OrganizationService, err = NewOrganizationService(db.OrganizationRepo, db.EmployeeRepo, organizationRecorder, db.Transactor, log)
	require.NoError(t, err)
	s.PositionService, err = NewPositionService(db.PositionRepo, db.Transactor, log)
	require.NoError(t, err)
	s.RankService, err = NewRankService(db.RankRepo, db.Transactor, log)
	require.NoError(t, err)
	s.EmployeeHistoryService, err = NewHistoryService(db.EmployeeHistoryRepo)
	require.NoError(t, err)
	s.OrganizationHistoryService, err = NewHistoryService(db.OrgHistoryRepo)
	require.NoError(t, err)

	return s
}
