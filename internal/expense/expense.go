package expense

import (
	"time"

	expenseDatamodel "github.com/anshumat/payroll-management/internal/core/datamodel/expense"
)

type Expense struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Category     string     `json:"category"`
	Amount       int64      `json:"amount"`
	Description  string     `json:"description,omitempty"`
	ExpenseDate  time.Time  `json:"date"`
	Status       string     `json:"status"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// KnownCategories is the recommended category set. Category stays free text;
// this list backs the public categories endpoint and the submission form.
var KnownCategories = []string{
	"Travel", "Meals", "Equipment", "Training", "Office Supplies",
}

// CanBeDecided reports whether the expense still awaits a decision.
// Approved and rejected are terminal.
func (e *Expense) CanBeDecided() bool {
	return e.Status == StatusPending
}

func (e *Expense) Approve() {
	e.Status = StatusApproved
	now := time.Now()
	e.DecidedAt = &now
}

func (e *Expense) Reject() {
	e.Status = StatusRejected
	now := time.Now()
	e.DecidedAt = &now
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Category:     e.Category,
		Amount:       e.Amount,
		Description:  e.Description,
		ExpenseDate:  e.ExpenseDate,
		Status:       e.Status,
		DecidedAt:    e.DecidedAt,
		CreatedAt:    e.CreatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Category:     e.Category,
		Amount:       e.Amount,
		Description:  e.Description,
		ExpenseDate:  e.ExpenseDate,
		Status:       e.Status,
		DecidedAt:    e.DecidedAt,
		CreatedAt:    e.CreatedAt,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}
