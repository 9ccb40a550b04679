package dashboard

import (
	"github.com/anshumat/payroll-management/internal/expense"
	"github.com/anshumat/payroll-management/internal/payroll"
)

// MonthlyBucket is one point of the salary series, keyed by a 3-letter month
// abbreviation.
type MonthlyBucket struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

// CategoryBucket is one category's total expense amount.
type CategoryBucket struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// StatusCount is one expense status bucket. The three buckets Pending,
// Approved and Rejected are always present, in that order.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Stats is the dashboard payload derived from the records visible to the
// calling principal.
type Stats struct {
	TotalSalary         int64            `json:"total_salary"`
	TotalExpenses       int64            `json:"total_expenses"`
	PendingExpenseCount int64            `json:"pending_expense_count"`
	EmployeeCount       int64            `json:"employee_count"`
	MonthlySeries       []MonthlyBucket  `json:"monthly_series"`
	ExpensesByCategory  []CategoryBucket `json:"expenses_by_category"`
	ExpenseStatusCounts []StatusCount    `json:"expense_status_counts"`
}

// BuildStats aggregates a visible record set into dashboard statistics. It is
// a pure function of its inputs; visibility filtering happens before the call.
// Monthly and category buckets keep first-seen order rather than calendar or
// alphabetical order, matching the order records were created in.
func BuildStats(slips []*payroll.SalarySlip, expenses []*expense.Expense, employeeCount int64) *Stats {
	stats := &Stats{
		EmployeeCount:       employeeCount,
		MonthlySeries:       []MonthlyBucket{},
		ExpensesByCategory:  []CategoryBucket{},
		ExpenseStatusCounts: []StatusCount{},
	}

	monthIndex := make(map[string]int)
	for _, s := range slips {
		stats.TotalSalary += s.NetSalary

		key := payroll.MonthAbbrev(s.Month)
		if i, ok := monthIndex[key]; ok {
			stats.MonthlySeries[i].Amount += s.NetSalary
		} else {
			monthIndex[key] = len(stats.MonthlySeries)
			stats.MonthlySeries = append(stats.MonthlySeries, MonthlyBucket{Month: key, Amount: s.NetSalary})
		}
	}

	categoryIndex := make(map[string]int)
	statusCounts := map[string]int64{}
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
		statusCounts[e.Status]++
		if e.Status == expense.StatusPending {
			stats.PendingExpenseCount++
		}

		if i, ok := categoryIndex[e.Category]; ok {
			stats.ExpensesByCategory[i].Amount += e.Amount
		} else {
			categoryIndex[e.Category] = len(stats.ExpensesByCategory)
			stats.ExpensesByCategory = append(stats.ExpensesByCategory, CategoryBucket{Category: e.Category, Amount: e.Amount})
		}
	}

	stats.ExpenseStatusCounts = []StatusCount{
		{Status: "Pending", Count: statusCounts[expense.StatusPending]},
		{Status: "Approved", Count: statusCounts[expense.StatusApproved]},
		{Status: "Rejected", Count: statusCounts[expense.StatusRejected]},
	}

	return stats
}
