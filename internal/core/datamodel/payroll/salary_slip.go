package payroll

import "time"

type SalarySlip struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeID   int64     `gorm:"column:employee_id;not null;index"`
	EmployeeName string    `gorm:"column:employee_name;not null"`
	Month        string    `gorm:"column:month;not null"`
	Year         int       `gorm:"column:year;not null"`
	BasicSalary  int64     `gorm:"column:basic_salary;not null"`
	Allowances   int64     `gorm:"column:allowances;default:0"`
	Deductions   int64     `gorm:"column:deductions;default:0"`
	NetSalary    int64     `gorm:"column:net_salary;not null"`
	Status       string    `gorm:"column:status;default:draft"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}
