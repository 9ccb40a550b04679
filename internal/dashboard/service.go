package dashboard

import (
	"log/slog"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/expense"
	"github.com/anshumat/payroll-management/internal/payroll"
)

// SlipLister provides the salary slips visible to a principal.
type SlipLister interface {
	ListSlips(p internal.Principal) ([]*payroll.SalarySlip, error)
}

// ExpenseLister provides the expenses visible to a principal.
type ExpenseLister interface {
	ListExpenses(p internal.Principal) ([]*expense.Expense, error)
}

// EmployeeCounter counts employees in the store.
type EmployeeCounter interface {
	CountEmployees() (int64, error)
}

// Service composes the payroll and expense read sides into dashboard stats.
type Service struct {
	slips     SlipLister
	expenses  ExpenseLister
	employees EmployeeCounter
	logger    *slog.Logger
}

func NewService(slips SlipLister, expenses ExpenseLister, employees EmployeeCounter, logger *slog.Logger) *Service {
	return &Service{
		slips:     slips,
		expenses:  expenses,
		employees: employees,
		logger:    logger,
	}
}

// GetStats aggregates the records visible to the principal. Admins see
// store-wide numbers; an employee sees only their own records and an
// employee count of one.
func (s *Service) GetStats(p internal.Principal) (*Stats, error) {
	slips, err := s.slips.ListSlips(p)
	if err != nil {
		s.logger.Error("failed to load salary slips for dashboard", "error", err, "user_id", p.UserID)
		return nil, err
	}

	expenses, err := s.expenses.ListExpenses(p)
	if err != nil {
		s.logger.Error("failed to load expenses for dashboard", "error", err, "user_id", p.UserID)
		return nil, err
	}

	employeeCount := int64(1)
	if p.IsAdmin() {
		employeeCount, err = s.employees.CountEmployees()
		if err != nil {
			s.logger.Error("failed to count employees for dashboard", "error", err)
			return nil, err
		}
	}

	return BuildStats(slips, expenses, employeeCount), nil
}
