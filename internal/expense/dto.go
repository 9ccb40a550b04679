package expense

import (
	"time"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/core/common/validation"
)

// SubmitExpenseDTO is the request payload for submitting an expense.
// Any caller-supplied employee identity is ignored; ownership always comes
// from the authenticated principal.
type SubmitExpenseDTO struct {
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"date"`
}

func (dto SubmitExpenseDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("category", dto.Category).Required()
	v.Field("amount", dto.Amount).Required().MinInt(1, internal.ErrCodeInvalidAmount)
	v.Field("date", dto.ExpenseDate).Custom(func(value interface{}) *internal.AppError {
		if t, ok := value.(time.Time); ok && t.IsZero() {
			return internal.NewValidationFieldError("date", "date is required", internal.ErrCodeInvalidDate)
		}
		return nil
	})

	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// DecideExpenseDTO carries an approve/reject decision.
type DecideExpenseDTO struct {
	Status string `json:"status"`
}

func (dto DecideExpenseDTO) Validate() error {
	if dto.Status != StatusApproved && dto.Status != StatusRejected {
		return internal.NewValidationFieldError("status",
			"status must be either 'approved' or 'rejected'", internal.ErrCodeInvalidStatus)
	}
	return nil
}
