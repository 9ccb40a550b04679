package dashboard_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/dashboard"
	"github.com/anshumat/payroll-management/internal/expense"
	"github.com/anshumat/payroll-management/internal/payroll"
)

// Mocks scope records by principal the way the real services do.
type mockSlipLister struct {
	byEmployee map[int64][]*payroll.SalarySlip
	all        []*payroll.SalarySlip
}

func (m *mockSlipLister) ListSlips(p internal.Principal) ([]*payroll.SalarySlip, error) {
	if p.IsAdmin() {
		return m.all, nil
	}
	return m.byEmployee[p.UserID], nil
}

type mockExpenseLister struct {
	byEmployee map[int64][]*expense.Expense
	all        []*expense.Expense
}

func (m *mockExpenseLister) ListExpenses(p internal.Principal) ([]*expense.Expense, error) {
	if p.IsAdmin() {
		return m.all, nil
	}
	return m.byEmployee[p.UserID], nil
}

type mockEmployeeCounter struct {
	count int64
}

func (m *mockEmployeeCounter) CountEmployees() (int64, error) {
	return m.count, nil
}

var _ = Describe("DashboardService", func() {
	var (
		service  *dashboard.Service
		admin    internal.Principal
		employee internal.Principal
	)

	BeforeEach(func() {
		aliceSlips := []*payroll.SalarySlip{slip("March", 1000)}
		bobSlips := []*payroll.SalarySlip{slip("March", 2000)}
		aliceExpenses := []*expense.Expense{claim("Travel", expense.StatusPending, 500)}
		bobExpenses := []*expense.Expense{claim("Meals", expense.StatusApproved, 300)}

		slips := &mockSlipLister{
			byEmployee: map[int64][]*payroll.SalarySlip{10: aliceSlips, 11: bobSlips},
			all:        append(append([]*payroll.SalarySlip{}, aliceSlips...), bobSlips...),
		}
		expenses := &mockExpenseLister{
			byEmployee: map[int64][]*expense.Expense{10: aliceExpenses, 11: bobExpenses},
			all:        append(append([]*expense.Expense{}, aliceExpenses...), bobExpenses...),
		}
		counter := &mockEmployeeCounter{count: 2}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		service = dashboard.NewService(slips, expenses, counter, logger)
		admin = internal.Principal{UserID: 1, Role: internal.RoleAdmin, Name: "Admin"}
		employee = internal.Principal{UserID: 10, Role: internal.RoleEmployee, Name: "Alice"}
	})

	It("should aggregate store-wide records for an admin", func() {
		stats, err := service.GetStats(admin)

		Expect(err).ToNot(HaveOccurred())
		Expect(stats.TotalSalary).To(Equal(int64(3000)))
		Expect(stats.TotalExpenses).To(Equal(int64(800)))
		Expect(stats.PendingExpenseCount).To(Equal(int64(1)))
		Expect(stats.EmployeeCount).To(Equal(int64(2)))
	})

	It("should aggregate only the caller's records for an employee", func() {
		stats, err := service.GetStats(employee)

		Expect(err).ToNot(HaveOccurred())
		Expect(stats.TotalSalary).To(Equal(int64(1000)))
		Expect(stats.TotalExpenses).To(Equal(int64(500)))
		Expect(stats.EmployeeCount).To(Equal(int64(1)))
	})
})
