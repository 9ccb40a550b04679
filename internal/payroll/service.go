package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/core/events"
	"github.com/anshumat/payroll-management/internal/user"
)

// Repository defines the data access methods for salary slips
type Repository interface {
	Create(s *SalarySlip) error
	GetByID(id int64) (*SalarySlip, error)
	GetByEmployeeID(employeeID int64) ([]*SalarySlip, error)
	GetAll() ([]*SalarySlip, error)
	Update(s *SalarySlip) error
}

// UserDirectory resolves employee references on slip creation.
type UserDirectory interface {
	GetByID(id int64) (*user.User, error)
}

// Service handles salary slip business logic
type Service struct {
	repo     Repository
	users    UserDirectory
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, users UserDirectory, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateSlip creates an issued salary slip for a known employee. Admin only.
func (s *Service) CreateSlip(p internal.Principal, dto CreateSalarySlipDTO) (*SalarySlip, error) {
	if err := internal.Authorize(p, internal.ActionCreateSalarySlip, 0); err != nil {
		s.logger.Warn("create slip denied", "user_id", p.UserID, "role", p.Role)
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("salary slip validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	employee, err := s.users.GetByID(dto.EmployeeID)
	if err != nil {
		s.logger.Error("employee not found for slip", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.ErrEmployeeNotFound
	}

	now := time.Now()
	slip := &SalarySlip{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Month:        dto.Month,
		Year:         dto.Year,
		BasicSalary:  *dto.BasicSalary,
		Allowances:   dto.Allowances,
		Deductions:   dto.Deductions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	slip.Recompute()
	slip.Issue()

	if err := s.repo.Create(slip); err != nil {
		s.logger.Error("failed to create salary slip", "error", err, "employee_id", employee.ID)
		return nil, err
	}

	s.logger.Info("salary slip created",
		"slip_id", slip.ID,
		"employee_id", slip.EmployeeID,
		"month", slip.Month,
		"year", slip.Year,
		"net_salary", slip.NetSalary)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewSalarySlipIssuedEvent(slip.ID, slip.EmployeeID, slip.Month, slip.Year, slip.NetSalary))
	}

	return slip, nil
}

// UpdateSlip merges the provided fields, recomputes the net salary within the
// same call, and bumps updated_at. Employee identity and created_at never
// change. Admin only.
func (s *Service) UpdateSlip(p internal.Principal, slipID int64, dto UpdateSalarySlipDTO) (*SalarySlip, error) {
	if err := internal.Authorize(p, internal.ActionUpdateSalarySlip, 0); err != nil {
		s.logger.Warn("update slip denied", "user_id", p.UserID, "role", p.Role, "slip_id", slipID)
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("salary slip update validation failed", "error", err, "slip_id", slipID)
		return nil, err
	}

	slip, err := s.repo.GetByID(slipID)
	if err != nil {
		s.logger.Error("failed to load salary slip for update", "error", err, "slip_id", slipID)
		if errors.Is(err, internal.ErrSalarySlipNotFound) {
			return nil, internal.ErrSalarySlipNotFound
		}
		return nil, internal.NewInternalError("failed to load salary slip", err)
	}

	dto.Apply(slip)
	slip.Recompute()
	slip.Issue()
	slip.UpdatedAt = time.Now()

	if err := s.repo.Update(slip); err != nil {
		s.logger.Error("failed to update salary slip", "error", err, "slip_id", slipID)
		return nil, err
	}

	s.logger.Info("salary slip updated",
		"slip_id", slip.ID,
		"employee_id", slip.EmployeeID,
		"net_salary", slip.NetSalary)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewSalarySlipIssuedEvent(slip.ID, slip.EmployeeID, slip.Month, slip.Year, slip.NetSalary))
	}

	return slip, nil
}

// ListSlips returns the slips visible to the principal: every slip for an
// admin, only the caller's own for an employee. Insertion order.
func (s *Service) ListSlips(p internal.Principal) ([]*SalarySlip, error) {
	if p.IsAdmin() {
		slips, err := s.repo.GetAll()
		if err != nil {
			s.logger.Error("failed to list salary slips", "error", err)
			return nil, err
		}
		return slips, nil
	}

	slips, err := s.repo.GetByEmployeeID(p.UserID)
	if err != nil {
		s.logger.Error("failed to list salary slips", "error", err, "employee_id", p.UserID)
		return nil, err
	}
	return slips, nil
}
