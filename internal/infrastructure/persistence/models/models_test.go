//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/shared"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeModel_DatesStoredAsUTCMidnight(t *testing.T) {
	employee := &employees.Employee{
		Seq:       3,
		Name:      "Kim",
		HireDate:  shared.NewDate(2024, time.February, 29),
		BirthDate: shared.NewDate(1991, time.December, 31),
	}

	model := &EmployeeModel{}
	model.FromDomain(employee)

	assert.Equal(t, time.UTC, model.HireDate.Location())
	assert.Equal(t, 0, model.HireDate.Hour())
	assert.Equal(t, 29, model.HireDate.Day())

	back := model.ToDomain()
	assert.Equal(t, "2024-02-29", back.HireDate.String())
	assert.Equal(t, "1991-12-31", back.BirthDate.String())
}

func TestEmployeeModel_ZeroDates(t *testing.T) {
	model := &EmployeeModel{}
	model.FromDomain(&employees.Employee{})

	assert.True(t, model.HireDate.IsZero())
	assert.True(t, model.ToDomain().BirthDate.IsZero())
}

func TestHistoryModels_TargetColumn(t *testing.T) {
	entry := &history.Entry{TargetSeq: 11, ActionType: history.ActionDelete}

	employeeRow := &EmployeeHistoryModel{}
	employeeRow.FromDomain(entry)
	assert.Equal(t, uint(11), employeeRow.EmployeeSeq)

	orgRow := &OrganizationHistoryModel{}
	orgRow.FromDomain(entry)
	assert.Equal(t, uint(11), orgRow.OrganizationSeq)
	assert.Equal(t, history.ActionDelete, orgRow.ToDomain().ActionType)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "employee", EmployeeModel{}.TableName())
	assert.Equal(t, "organization", OrganizationModel{}.TableName())
	assert.Equal(t, "rank", RankModel{}.TableName())
	assert.Len(t, All(), 7)
}
