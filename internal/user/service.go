package user

import (
	"log/slog"

	"github.com/anshumat/payroll-management/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, internal.ErrEmployeeNotFound
	}
	return u, nil
}

// ListEmployees returns the employee directory. Admin only.
func (s *Service) ListEmployees(p internal.Principal) ([]*User, error) {
	if !p.IsAdmin() {
		s.logger.Warn("list employees denied", "user_id", p.UserID, "role", p.Role)
		return nil, internal.ErrAccessDenied
	}

	employees, err := s.repo.ListEmployees()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// CountEmployees reports distinct employees in the store; the dashboard uses
// it for the admin view.
func (s *Service) CountEmployees() (int64, error) {
	return s.repo.CountEmployees()
}
