package payroll

import (
	"time"

	payrollDatamodel "github.com/anshumat/payroll-management/internal/core/datamodel/payroll"
)

type SalarySlip struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Month        string    `json:"month"`
	Year         int       `json:"year"`
	BasicSalary  int64     `json:"basic_salary"`
	Allowances   int64     `json:"allowances"`
	Deductions   int64     `json:"deductions"`
	NetSalary    int64     `json:"net_salary"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	// StatusDraft is modeled for forward compatibility; no current operation
	// produces it — every create and update writes an issued slip.
	StatusDraft  = "draft"
	StatusIssued = "issued"
)

// MonthNames are the recognized values for a slip's month, in calendar order.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func IsValidMonth(month string) bool {
	for _, m := range MonthNames {
		if m == month {
			return true
		}
	}
	return false
}

// MonthAbbrev returns the 3-letter bucket key the dashboard groups by.
func MonthAbbrev(month string) string {
	if len(month) < 3 {
		return month
	}
	return month[:3]
}

// Recompute keeps the net salary invariant: net = basic + allowances - deductions.
// The result may be negative; no floor is enforced.
func (s *SalarySlip) Recompute() {
	s.NetSalary = s.BasicSalary + s.Allowances - s.Deductions
}

func (s *SalarySlip) Issue() {
	s.Status = StatusIssued
}

func ToDataModel(s *SalarySlip) *payrollDatamodel.SalarySlip {
	return &payrollDatamodel.SalarySlip{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Month:        s.Month,
		Year:         s.Year,
		BasicSalary:  s.BasicSalary,
		Allowances:   s.Allowances,
		Deductions:   s.Deductions,
		NetSalary:    s.NetSalary,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromDataModel(s *payrollDatamodel.SalarySlip) *SalarySlip {
	return &SalarySlip{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Month:        s.Month,
		Year:         s.Year,
		BasicSalary:  s.BasicSalary,
		Allowances:   s.Allowances,
		Deductions:   s.Deductions,
		NetSalary:    s.NetSalary,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromDataModelSlice(slips []*payrollDatamodel.SalarySlip) []*SalarySlip {
	result := make([]*SalarySlip, len(slips))
	for i, s := range slips {
		result[i] = FromDataModel(s)
	}
	return result
}
