package expense

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/core/events"
)

// Repository defines the data access methods for expenses
type Repository interface {
	Create(e *Expense) error
	GetByID(id int64) (*Expense, error)
	GetByEmployeeID(employeeID int64) ([]*Expense, error)
	GetAll() ([]*Expense, error)
	Update(e *Expense) error
}

// Service handles expense business logic
type Service struct {
	repo     Repository
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// SubmitExpense records a new pending expense owned by the caller. The
// employee id and name on the record always come from the principal, never
// from the payload.
func (s *Service) SubmitExpense(p internal.Principal, dto SubmitExpenseDTO) (*Expense, error) {
	if err := internal.Authorize(p, internal.ActionCreateExpense, 0); err != nil {
		s.logger.Warn("expense submission denied", "user_id", p.UserID, "role", p.Role)
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "user_id", p.UserID)
		return nil, err
	}

	exp := &Expense{
		EmployeeID:   p.UserID,
		EmployeeName: p.Name,
		Category:     dto.Category,
		Amount:       dto.Amount,
		Description:  dto.Description,
		ExpenseDate:  dto.ExpenseDate,
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err, "employee_id", p.UserID)
		return nil, err
	}

	s.logger.Info("expense submitted",
		"expense_id", exp.ID,
		"employee_id", exp.EmployeeID,
		"category", exp.Category,
		"amount", exp.Amount)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewExpenseSubmittedEvent(exp.ID, exp.EmployeeID, exp.Category, exp.Amount))
	}

	return exp, nil
}

// DecideExpense approves or rejects a pending expense. Admin only. Once an
// expense leaves pending the decision is final and further attempts conflict.
func (s *Service) DecideExpense(p internal.Principal, expenseID int64, dto DecideExpenseDTO) (*Expense, error) {
	if err := internal.Authorize(p, internal.ActionDecideExpense, 0); err != nil {
		s.logger.Warn("expense decision denied", "user_id", p.UserID, "role", p.Role, "expense_id", expenseID)
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("expense decision validation failed", "error", err, "expense_id", expenseID)
		return nil, err
	}

	exp, err := s.repo.GetByID(expenseID)
	if err != nil {
		s.logger.Error("failed to load expense for decision", "error", err, "expense_id", expenseID)
		if errors.Is(err, internal.ErrExpenseNotFound) {
			return nil, internal.ErrExpenseNotFound
		}
		return nil, internal.NewInternalError("failed to load expense", err)
	}

	if !exp.CanBeDecided() {
		s.logger.Warn("expense already decided", "expense_id", expenseID, "status", exp.Status)
		return nil, internal.ErrExpenseDecided
	}

	switch dto.Status {
	case StatusApproved:
		exp.Approve()
	case StatusRejected:
		exp.Reject()
	}

	if err := s.repo.Update(exp); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", expenseID)
		return nil, err
	}

	s.logger.Info("expense decided",
		"expense_id", exp.ID,
		"employee_id", exp.EmployeeID,
		"status", exp.Status,
		"decided_by", p.UserID)

	if s.eventBus != nil {
		s.eventBus.Publish(context.Background(),
			events.NewExpenseDecidedEvent(exp.ID, exp.EmployeeID, exp.Status, p.UserID))
	}

	return exp, nil
}

// ListExpenses returns the expenses visible to the principal: every expense
// for an admin, only the caller's own for an employee. Insertion order.
func (s *Service) ListExpenses(p internal.Principal) ([]*Expense, error) {
	if p.IsAdmin() {
		expenses, err := s.repo.GetAll()
		if err != nil {
			s.logger.Error("failed to list expenses", "error", err)
			return nil, err
		}
		return expenses, nil
	}

	expenses, err := s.repo.GetByEmployeeID(p.UserID)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "employee_id", p.UserID)
		return nil, err
	}
	return expenses, nil
}

// ListCategories returns the recommended expense categories.
func (s *Service) ListCategories() []string {
	return KnownCategories
}
