package expense

import "time"

type Expense struct {
	ID           int64      `gorm:"primaryKey"`
	EmployeeID   int64      `gorm:"column:employee_id;not null;index"`
	EmployeeName string     `gorm:"column:employee_name;not null"`
	Category     string     `gorm:"column:category;not null"`
	Amount       int64      `gorm:"column:amount;not null"`
	Description  string     `gorm:"column:description"`
	ExpenseDate  time.Time  `gorm:"column:expense_date;type:date"`
	Status       string     `gorm:"column:status;default:pending"`
	DecidedAt    *time.Time `gorm:"column:decided_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
}

func (Expense) TableName() string {
	return "expenses"
}
