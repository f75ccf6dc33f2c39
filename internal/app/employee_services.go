package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// employeeService implements the EmployeeService interface. Every mutation is
// recorded in the employee history within the same transaction.
type employeeService struct {
	employeeRepo employees.EmployeeRepository
	recorder     history.Recorder
	transactor   shared.Transactor
	logger       logger.Logger
	now          func() time.Time
}

// NewEmployeeService creates a new employeeService instance
func NewEmployeeService(
	employeeRepo employees.EmployeeRepository,
	recorder history.Recorder,
	transactor shared.Transactor,
	logger logger.Logger,
) (employees.EmployeeService, error) {
	return &employeeService{
		employeeRepo: employeeRepo,
		recorder:     recorder,
		transactor:   transactor,
		logger:       logger,
		now:          nowUTC,
	}, nil
}

func (s *employeeService) List(ctx context.Context, query *shared.PageQuery) ([]*employees.Employee, int64, error) {
	return page(
		func() ([]*employees.Employee, error) { return s.employeeRepo.List(ctx, query) },
		func() (int64, error) { return s.employeeRepo.Count(ctx) },
	)
}

func (s *employeeService) GetBySeq(ctx context.Context, seq uint) (*employees.Employee, error) {
	return s.employeeRepo.GetBySeq(ctx, seq)
}

func (s *employeeService) ensureEmailFree(ctx context.Context, email string, self uint) error {
	other, err := s.employeeRepo.GetByEmail(ctx, email)
	exists, err := found(err, employees.ErrEmployeeNotFound)
	if err != nil {
		return err
	}
	if exists && other.Seq != self {
		return employees.ErrEmployeeAlreadyExists
	}
	return nil
}

func (s *employeeService) Create(ctx context.Context, cmd *employees.CreateEmployee) (*employees.Employee, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	employee := cmd.ToEmployee()
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureEmailFree(ctx, employee.Email, 0); err != nil {
			return err
		}
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionInsert, employee.Seq, nil, employee)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// Update applies the fields set in cmd. An empty patch is refused before validation.
func (s *employeeService) Update(ctx context.Context, seq uint, cmd *employees.UpdateEmployee) (*employees.Employee, error) {
	if cmd.IsEmpty() {
		return nil, shared.ErrNoUpdateData
	}
	if err := validate(cmd); err != nil {
		return nil, err
	}

	var employee *employees.Employee
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		employee, err = s.employeeRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		before := *employee

		if cmd.Email != nil && *cmd.Email != employee.Email {
			if err := s.ensureEmailFree(ctx, *cmd.Email, seq); err != nil {
				return err
			}
		}

		cmd.ApplyTo(employee)
		if err := s.employeeRepo.Update(ctx, employee); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionUpdate, seq, &before, employee)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, seq uint) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.employeeRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		if err := s.employeeRepo.Delete(ctx, seq); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionDelete, seq, employee, nil)
	})
}

// SoftDelete stamps deleted_at and records the change as an update.
func (s *employeeService) SoftDelete(ctx context.Context, seq uint) (*employees.Employee, error) {
	var employee *employees.Employee
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		employee, err = s.employeeRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		before := *employee

		at := s.now()
		if err := s.employeeRepo.SoftDelete(ctx, seq, at); err != nil {
			return err
		}
		employee.DeletedAt = &at
		return s.recorder.Record(ctx, history.ActionUpdate, seq, &before, employee)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}
