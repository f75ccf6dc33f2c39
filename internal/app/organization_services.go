package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// organizationService implements the OrganizationService interface over the
// department / headquarters / team tree
type organizationService struct {
	organizationRepo organizations.OrganizationRepository
	employeeRepo     employees.EmployeeRepository
	recorder         history.Recorder
	transactor       shared.Transactor
	logger           logger.Logger
	now              func() time.Time
}

// NewOrganizationService creates a new organizationService instance
func NewOrganizationService(
	organizationRepo organizations.OrganizationRepository,
	employeeRepo employees.EmployeeRepository,
	recorder history.Recorder,
	transactor shared.Transactor,
	logger logger.Logger,
) (organizations.OrganizationService, error) {
	return &organizationService{
		organizationRepo: organizationRepo,
		employeeRepo:     employeeRepo,
		recorder:         recorder,
		transactor:       transactor,
		logger:           logger,
		now:              nowUTC,
	}, nil
}

func (s *organizationService) List(ctx context.Context, query *organizations.OrganizationQuery) ([]*organizations.Organization, int64, error) {
	return page(
		func() ([]*organizations.Organization, error) { return s.organizationRepo.List(ctx, query) },
		func() (int64, error) { return s.organizationRepo.Count(ctx, query) },
	)
}

func (s *organizationService) GetBySeq(ctx context.Context, seq uint) (*organizations.Organization, error) {
	return s.organizationRepo.GetBySeq(ctx, seq)
}

// Tree returns the root organizations with their descendants linked as Children.
func (s *organizationService) Tree(ctx context.Context) ([]*organizations.Organization, error) {
	all, err := s.organizationRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return organizations.BuildTree(all), nil
}

func (s *organizationService) CreateDepartment(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	return s.create(ctx, organizations.LevelDepartment, cmd)
}

func (s *organizationService) CreateHeadquarters(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	return s.create(ctx, organizations.LevelHeadquarters, cmd)
}

func (s *organizationService) CreateTeam(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	return s.create(ctx, organizations.LevelTeam, cmd)
}

func (s *organizationService) create(ctx context.Context, level int, cmd *organizations.CreateOrganization) (*organizations.Organization, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}
	if cmd.Level != level {
		return nil, organizations.ErrInvalidLevel
	}
	if level == organizations.LevelDepartment && cmd.ParentSeq != nil {
		return nil, organizations.ErrDepartmentHasParent
	}

	organization := cmd.ToOrganization()
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		parent, err := s.parentFor(ctx, level, cmd.ParentSeq)
		if err != nil {
			return err
		}
		if err := organizations.CheckPlacement(level, parent); err != nil {
			return err
		}

		if err := s.organizationRepo.Create(ctx, organization); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionInsert, organization.Seq, nil, organization)
	})
	if err != nil {
		return nil, err
	}
	return organization, nil
}

// parentFor loads the parent named by parentSeq. A dangling reference is
// reported with the error of the level the parent should have had.
func (s *organizationService) parentFor(ctx context.Context, level int, parentSeq *uint) (*organizations.Organization, error) {
	if parentSeq == nil {
		return nil, nil
	}

	parent, err := s.organizationRepo.GetBySeq(ctx, *parentSeq)
	exists, err := found(err, organizations.ErrOrganizationNotFound)
	if err != nil {
		return nil, err
	}
	if exists {
		return parent, nil
	}

	switch level {
	case organizations.LevelHeadquarters:
		return nil, organizations.ErrInvalidDepartmentSeq
	case organizations.LevelTeam:
		return nil, organizations.ErrInvalidHeadquartersSeq
	default:
		return nil, organizations.ErrInvalidParent
	}
}

func (s *organizationService) Update(ctx context.Context, seq uint, cmd *organizations.UpdateOrganization) (*organizations.Organization, error) {
	if cmd.IsEmpty() {
		return nil, shared.ErrNoUpdateData
	}
	if err := validate(cmd); err != nil {
		return nil, err
	}

	var organization *organizations.Organization
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		organization, err = s.organizationRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		before := *organization

		cmd.ApplyTo(organization)
		if err := s.organizationRepo.Update(ctx, organization); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionUpdate, seq, &before, organization)
	})
	if err != nil {
		return nil, err
	}
	return organization, nil
}

// Move re-parents seq under newParentSeq, which must sit exactly one level above.
// Departments stay roots.
func (s *organizationService) Move(ctx context.Context, seq, newParentSeq uint) (*organizations.Organization, error) {
	if seq == newParentSeq {
		return nil, organizations.ErrInvalidParent
	}

	var organization *organizations.Organization
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		organization, err = s.organizationRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		parent, err := s.organizationRepo.GetBySeq(ctx, newParentSeq)
		if err != nil {
			return err
		}

		if organization.Level == organizations.LevelDepartment || parent.Level != organization.Level-1 {
			return organizations.ErrInvalidParent
		}

		before := *organization
		organization.ParentSeq = &newParentSeq
		if err := s.organizationRepo.Update(ctx, organization); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionUpdate, seq, &before, organization)
	})
	if err != nil {
		return nil, err
	}
	return organization, nil
}

// ensureRemovable refuses organizations still holding employees or sub organizations.
func (s *organizationService) ensureRemovable(ctx context.Context, seq uint) error {
	employeeCount, err := s.employeeRepo.CountActiveByOrganization(ctx, seq)
	if err != nil {
		return err
	}
	if employeeCount > 0 {
		return organizations.ErrEmployeesExist
	}

	hasChildren, err := s.organizationRepo.HasChildren(ctx, seq)
	if err != nil {
		return err
	}
	if hasChildren {
		return organizations.ErrSubOrganizationsExist
	}
	return nil
}

func (s *organizationService) Delete(ctx context.Context, seq uint) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		organization, err := s.organizationRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		if err := s.ensureRemovable(ctx, seq); err != nil {
			return err
		}
		if err := s.organizationRepo.Delete(ctx, seq); err != nil {
			return err
		}
		return s.recorder.Record(ctx, history.ActionDelete, seq, organization, nil)
	})
}

func (s *organizationService) SoftDelete(ctx context.Context, seq uint) (*organizations.Organization, error) {
	var organization *organizations.Organization
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		organization, err = s.organizationRepo.GetBySeq(ctx, seq)
		if err != nil {
			return err
		}
		if err := s.ensureRemovable(ctx, seq); err != nil {
			return err
		}
		before := *organization

		at := s.now()
		if err := s.organizationRepo.SoftDelete(ctx, seq, at); err != nil {
			return err
		}
		organization.DeletedAt = &at
		return s.recorder.Record(ctx, history.ActionUpdate, seq, &before, organization)
	})
	if err != nil {
		return nil, err
	}
	return organization, nil
}
