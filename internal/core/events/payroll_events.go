package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeExpenseSubmitted = "expense.submitted"
	EventTypeExpenseDecided   = "expense.decided"
	EventTypeSalarySlipIssued = "salary_slip.issued"
)

type ExpenseSubmittedEvent struct {
	BaseEvent
	ExpenseID  int64  `json:"expense_id"`
	EmployeeID int64  `json:"employee_id"`
	Category   string `json:"category"`
	Amount     int64  `json:"amount"`
}

func NewExpenseSubmittedEvent(expenseID, employeeID int64, category string, amount int64) *ExpenseSubmittedEvent {
	return &ExpenseSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeExpenseSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":  expenseID,
				"employee_id": employeeID,
				"category":    category,
				"amount":      amount,
			},
		},
		ExpenseID:  expenseID,
		EmployeeID: employeeID,
		Category:   category,
		Amount:     amount,
	}
}

type ExpenseDecidedEvent struct {
	BaseEvent
	ExpenseID  int64  `json:"expense_id"`
	EmployeeID int64  `json:"employee_id"`
	Status     string `json:"status"`
	DecidedBy  int64  `json:"decided_by"`
}

func NewExpenseDecidedEvent(expenseID, employeeID int64, status string, decidedBy int64) *ExpenseDecidedEvent {
	return &ExpenseDecidedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeExpenseDecided,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":  expenseID,
				"employee_id": employeeID,
				"status":      status,
				"decided_by":  decidedBy,
			},
		},
		ExpenseID:  expenseID,
		EmployeeID: employeeID,
		Status:     status,
		DecidedBy:  decidedBy,
	}
}

type SalarySlipIssuedEvent struct {
	BaseEvent
	SlipID     int64  `json:"slip_id"`
	EmployeeID int64  `json:"employee_id"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
	NetSalary  int64  `json:"net_salary"`
}

func NewSalarySlipIssuedEvent(slipID, employeeID int64, month string, year int, netSalary int64) *SalarySlipIssuedEvent {
	return &SalarySlipIssuedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeSalarySlipIssued,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"slip_id":     slipID,
				"employee_id": employeeID,
				"month":       month,
				"year":        year,
				"net_salary":  netSalary,
			},
		},
		SlipID:     slipID,
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		NetSalary:  netSalary,
	}
}
