//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(ctx, user))
	assert.NotZero(t, user.Seq)
	assert.False(t, user.CreatedAt.IsZero())

	fetched, err := tc.UserRepo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.Seq, fetched.Seq)
	assert.Nil(t, fetched.CurrentRefreshToken)

	token := "refresh-token"
	require.NoError(t, tc.UserRepo.UpdateRefreshToken(ctx, user.Seq, &token))
	fetched, err = tc.UserRepo.GetBySeq(ctx, user.Seq)
	require.NoError(t, err)
	require.NotNil(t, fetched.CurrentRefreshToken)
	assert.Equal(t, token, *fetched.CurrentRefreshToken)

	_, err = tc.UserRepo.GetBySeq(ctx, 999)
	assert.True(t, errors.Is(err, users.ErrUserNotFound))
}

func TestUserSqliteRepository_DuplicateKeys(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	first := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(ctx, first))

	fetched, err := tc.UserRepo.GetByEmail(ctx, first.Email)
	require.NoError(t, err)
	assert.Equal(t, first.Seq, fetched.Seq)
	_, err = tc.UserRepo.GetByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, users.ErrUserNotFound))

	sameEmail := CreateTestUser(t)
	sameEmail.Email = first.Email
	err = tc.UserRepo.Create(ctx, sameEmail)
	assert.True(t, errors.Is(err, users.ErrUserAlreadyExists))

	sameUsername := CreateTestUser(t)
	sameUsername.Username = first.Username
	err = tc.UserRepo.Create(ctx, sameUsername)
	assert.True(t, errors.Is(err, users.ErrUserAlreadyExists))

	err = tc.PositionRepo.Create(ctx, &positions.Position{Title: "Engineer"})
	require.NoError(t, err)
	err = tc.PositionRepo.Create(ctx, &positions.Position{Title: "Engineer"})
	assert.True(t, errors.Is(err, positions.ErrPositionAlreadyExists))
}

func TestUserSqliteRepository_ListPaging(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, tc.UserRepo.Create(ctx, CreateTestUser(t)))
	}

	query := &shared.PageQuery{Page: 2, Size: 2, SortBy: "seq", Order: shared.OrderDesc}
	list, err := tc.UserRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint(3), list[0].Seq)
	assert.Equal(t, uint(2), list[1].Seq)

	total, err := tc.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	_, err = tc.UserRepo.List(ctx, &shared.PageQuery{Page: 1, Size: 2, SortBy: "nope", Order: shared.OrderAsc})
	assert.True(t, errors.Is(err, shared.ErrInvalidSortColumn))
}

func TestEmployeeSqliteRepository_DatesRoundTrip(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	employee := CreateTestEmployee(t, nil)
	require.NoError(t, tc.EmployeeRepo.Create(ctx, employee))

	fetched, err := tc.EmployeeRepo.GetByEmail(ctx, employee.Email)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-02", fetched.HireDate.String())
	assert.Equal(t, "1990-01-15", fetched.BirthDate.String())
	assert.Equal(t, employees.FlagYes, fetched.MarketerYN)
}

func TestEmployeeSqliteRepository_CountActiveByOrganization(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	org := CreateTestOrganization(t, "Sales", organizations.LevelDepartment, nil)
	require.NoError(t, tc.OrganizationRepo.Create(ctx, org))

	first := CreateTestEmployee(t, &org.Seq)
	second := CreateTestEmployee(t, &org.Seq)
	require.NoError(t, tc.EmployeeRepo.Create(ctx, first))
	require.NoError(t, tc.EmployeeRepo.Create(ctx, second))
	require.NoError(t, tc.EmployeeRepo.SoftDelete(ctx, second.Seq, time.Now().UTC()))

	count, err := tc.EmployeeRepo.CountActiveByOrganization(ctx, org.Seq)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOrganizationSqliteRepository_FiltersAndChildren(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	dept := CreateTestOrganization(t, "Dept", organizations.LevelDepartment, nil)
	require.NoError(t, tc.OrganizationRepo.Create(ctx, dept))
	hq := CreateTestOrganization(t, "HQ", organizations.LevelHeadquarters, &dept.Seq)
	hq.IsVisible = false
	require.NoError(t, tc.OrganizationRepo.Create(ctx, hq))

	fetched, err := tc.OrganizationRepo.GetBySeq(ctx, hq.Seq)
	require.NoError(t, err)
	assert.False(t, fetched.IsVisible)

	level := organizations.LevelHeadquarters
	query := organizations.NewOrganizationQuery()
	query.Level = &level
	list, err := tc.OrganizationRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "HQ", list[0].Name)

	total, err := tc.OrganizationRepo.Count(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	hasChildren, err := tc.OrganizationRepo.HasChildren(ctx, dept.Seq)
	require.NoError(t, err)
	assert.True(t, hasChildren)

	require.NoError(t, tc.OrganizationRepo.SoftDelete(ctx, hq.Seq, time.Now().UTC()))
	hasChildren, err = tc.OrganizationRepo.HasChildren(ctx, dept.Seq)
	require.NoError(t, err)
	assert.False(t, hasChildren)

	all, err := tc.OrganizationRepo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPositionSqliteRepository_DeleteMissing(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	position := &positions.Position{Title: "Manager"}
	require.NoError(t, tc.PositionRepo.Create(ctx, position))

	fetched, err := tc.PositionRepo.GetByTitle(ctx, "Manager")
	require.NoError(t, err)
	assert.Equal(t, position.Seq, fetched.Seq)

	require.NoError(t, tc.PositionRepo.Delete(ctx, position.Seq))
	err = tc.PositionRepo.Delete(ctx, position.Seq)
	assert.True(t, errors.Is(err, positions.ErrPositionNotFound))
}

func TestHistorySqliteRepository_CreateAndList(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	after := `{"name":"Kim"}`
	username := "admin"
	entry := &history.Entry{
		TargetSeq:  7,
		ActionType: history.ActionInsert,
		AfterValue: &after,
		Username:   &username,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, tc.EmployeeHistoryRepo.Create(ctx, entry))
	assert.NotZero(t, entry.Seq)

	list, err := tc.EmployeeHistoryRepo.List(ctx, shared.NewPageQuery())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(7), list[0].TargetSeq)
	assert.Nil(t, list[0].BeforeValue)

	_, err = tc.OrgHistoryRepo.GetBySeq(ctx, entry.Seq)
	assert.True(t, errors.Is(err, history.ErrOrganizationHistoryNotFound))
	assert.Equal(t, history.KindOrganization, tc.OrgHistoryRepo.Kind())
}

func TestGormTransactor_RollsBack(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, tc.UserRepo.Create(ctx, CreateTestUser(t)))
		return boom
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	total, err := tc.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	err = tc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return tc.UserRepo.Create(ctx, CreateTestUser(t))
	})
	require.NoError(t, err)

	total, err = tc.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
