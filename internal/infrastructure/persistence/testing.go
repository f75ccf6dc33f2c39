//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/pkg/config"
	"github.com/MGTheTrain/rms/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                  *gorm.DB
	Transactor          shared.Transactor
	UserRepo            users.UserRepository
	EmployeeRepo        employees.EmployeeRepository
	OrganizationRepo    organizations.OrganizationRepository
	PositionRepo        positions.PositionRepository
	RankRepo            ranks.RankRepository
	EmployeeHistoryRepo history.HistoryRepository
	OrgHistoryRepo      history.HistoryRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	tc := &TestContext{DB: db}

	tc.Transactor, err = NewGormTransactor(db, log)
	require.NoError(t, err)
	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.EmployeeRepo, err = NewGormEmployeeRepository(db, log)
	require.NoError(t, err)
	tc.OrganizationRepo, err = NewGormOrganizationRepository(db, log)
	require.NoError(t, err)
	tc.PositionRepo, err = NewGormPositionRepository(db, log)
	require.NoError(t, err)
	tc.RankRepo, err = NewGormRankRepository(db, log)
	require.NoError(t, err)
	tc.EmployeeHistoryRepo, err = NewGormEmployeeHistoryRepository(db, log)
	require.NoError(t, err)
	tc.OrgHistoryRepo, err = NewGormOrganizationHistoryRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser returns a user with a unique username and email
func CreateTestUser(t *testing.T) *users.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	return &users.User{
		Username: "user-" + suffix,
		Email:    "user-" + suffix + "@example.com",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Type:     users.TypeEmployee,
		Status:   users.StatusActive,
	}
}

// CreateTestEmployee returns an employee with a unique email
func CreateTestEmployee(t *testing.T, organizationSeq *uint) *employees.Employee {
	t.Helper()

	return &employees.Employee{
		OrganizationSeq: organizationSeq,
		Status:          employees.StatusActive,
		Name:            "Kim",
		Email:           "emp-" + uuid.NewString()[:8] + "@example.com",
		PhoneNumber:     "010-0000-0000",
		ExtensionNumber: "1234",
		HireDate:        shared.NewDate(2023, time.March, 2),
		BirthDate:       shared.NewDate(1990, time.January, 15),
		IncentiveYN:     employees.FlagNo,
		MarketerYN:      employees.FlagYes,
	}
}

// CreateTestOrganization returns a visible organization
func CreateTestOrganization(t *testing.T, name string, level int, parentSeq *uint) *organizations.Organization {
	t.Helper()

	return &organizations.Organization{
		Name:      name,
		Level:     level,
		ParentSeq: parentSeq,
		IsVisible: true,
	}
}
