package models

import (
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

// All returns every model, in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&EmployeeModel{},
		&OrganizationModel{},
		&PositionModel{},
		&RankModel{},
		&EmployeeHistoryModel{},
		&OrganizationHistoryModel{},
	}
}

// Dates are stored as UTC midnight. Every driver connection is configured to
// read and write times in UTC.
func toDBDate(d shared.Date) time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func fromDBDate(t time.Time) shared.Date {
	if t.IsZero() {
		return shared.Date{}
	}
	return shared.DateOf(t.UTC())
}
