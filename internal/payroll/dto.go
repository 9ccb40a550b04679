package payroll

import (
	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/core/common/validation"
)

// CreateSalarySlipDTO is the request payload for creating a slip.
// BasicSalary is a pointer so a missing field is distinguishable from zero.
type CreateSalarySlipDTO struct {
	EmployeeID  int64  `json:"employee_id"`
	Month       string `json:"month"`
	Year        int    `json:"year"`
	BasicSalary *int64 `json:"basic_salary"`
	Allowances  int64  `json:"allowances"`
	Deductions  int64  `json:"deductions"`
}

func (dto CreateSalarySlipDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required()
	v.Field("month", dto.Month).Required().OneOf(MonthNames, internal.ErrCodeInvalidMonth)
	v.Field("year", dto.Year).Required()
	v.Field("basic_salary", dto.BasicSalary).Required().MinInt(0, internal.ErrCodeMissingSalary)
	v.Field("allowances", dto.Allowances).MinInt(0, internal.ErrCodeInvalidAmount)
	v.Field("deductions", dto.Deductions).MinInt(0, internal.ErrCodeInvalidAmount)

	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// UpdateSalarySlipDTO carries partial fields; nil means "leave unchanged".
// Identity fields (employee, timestamps) are never updatable.
type UpdateSalarySlipDTO struct {
	Month       *string `json:"month"`
	Year        *int    `json:"year"`
	BasicSalary *int64  `json:"basic_salary"`
	Allowances  *int64  `json:"allowances"`
	Deductions  *int64  `json:"deductions"`
}

func (dto UpdateSalarySlipDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("month", dto.Month).
		Custom(func(value interface{}) *internal.AppError {
			if m, ok := value.(*string); ok && m != nil && *m == "" {
				return internal.NewValidationFieldError("month", "month must not be empty", internal.ErrCodeInvalidMonth)
			}
			return nil
		}).
		OneOf(MonthNames, internal.ErrCodeInvalidMonth)
	v.Field("basic_salary", dto.BasicSalary).MinInt(0, internal.ErrCodeInvalidAmount)
	v.Field("allowances", dto.Allowances).MinInt(0, internal.ErrCodeInvalidAmount)
	v.Field("deductions", dto.Deductions).MinInt(0, internal.ErrCodeInvalidAmount)

	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Apply merges the provided fields into the slip. The caller recomputes the
// net salary afterwards.
func (dto UpdateSalarySlipDTO) Apply(s *SalarySlip) {
	if dto.Month != nil {
		s.Month = *dto.Month
	}
	if dto.Year != nil {
		s.Year = *dto.Year
	}
	if dto.BasicSalary != nil {
		s.BasicSalary = *dto.BasicSalary
	}
	if dto.Allowances != nil {
		s.Allowances = *dto.Allowances
	}
	if dto.Deductions != nil {
		s.Deductions = *dto.Deductions
	}
}
