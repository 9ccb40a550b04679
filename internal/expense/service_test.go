package expense_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/expense"
)

func TestExpenseService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Service Suite")
}

// Mock repository for testing
type mockExpenseRepository struct {
	expenses    map[int64]*expense.Expense
	order       []int64
	createError error
	getError    error
	updateError error
	nextID      int64
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{
		expenses: make(map[int64]*expense.Expense),
		nextID:   1,
	}
}

func (m *mockExpenseRepository) Create(e *expense.Expense) error {
	if m.createError != nil {
		return m.createError
	}
	e.ID = m.nextID
	m.nextID++
	m.expenses[e.ID] = e
	m.order = append(m.order, e.ID)
	return nil
}

func (m *mockExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	e, exists := m.expenses[id]
	if !exists {
		return nil, internal.ErrExpenseNotFound
	}
	return e, nil
}

func (m *mockExpenseRepository) GetByEmployeeID(employeeID int64) ([]*expense.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	result := make([]*expense.Expense, 0)
	for _, id := range m.order {
		if m.expenses[id].EmployeeID == employeeID {
			result = append(result, m.expenses[id])
		}
	}
	return result, nil
}

func (m *mockExpenseRepository) GetAll() ([]*expense.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	result := make([]*expense.Expense, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.expenses[id])
	}
	return result, nil
}

func (m *mockExpenseRepository) Update(e *expense.Expense) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.expenses[e.ID] = e
	return nil
}

var _ = Describe("ExpenseService", func() {
	var (
		service  *expense.Service
		mockRepo *mockExpenseRepository
		logger   *slog.Logger
		admin    internal.Principal
		employee internal.Principal
	)

	BeforeEach(func() {
		mockRepo = newMockExpenseRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = expense.NewService(mockRepo, nil, logger)
		admin = internal.Principal{UserID: 1, Role: internal.RoleAdmin, Name: "Admin"}
		employee = internal.Principal{UserID: 10, Role: internal.RoleEmployee, Name: "Alice"}
	})

	submit := func(p internal.Principal, category string, amount int64) (*expense.Expense, error) {
		return service.SubmitExpense(p, expense.SubmitExpenseDTO{
			Category:    category,
			Amount:      amount,
			Description: "test expense",
			ExpenseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	Describe("SubmitExpense", func() {
		Context("when an employee submits a valid expense", func() {
			It("should record it as pending and owned by the caller", func() {
				exp, err := submit(employee, "Travel", 500)

				Expect(err).ToNot(HaveOccurred())
				Expect(exp.ID).To(BeNumerically(">", 0))
				Expect(exp.Status).To(Equal(expense.StatusPending))
				Expect(exp.EmployeeID).To(Equal(int64(10)))
				Expect(exp.EmployeeName).To(Equal("Alice"))
				Expect(exp.DecidedAt).To(BeNil())
			})
		})

		Context("when the payload is invalid", func() {
			It("should reject a non-positive amount", func() {
				_, err := submit(employee, "Travel", 0)

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
			})

			It("should reject an empty category", func() {
				_, err := submit(employee, "", 500)
				Expect(err).To(HaveOccurred())
			})

			It("should reject a missing date", func() {
				_, err := service.SubmitExpense(employee, expense.SubmitExpenseDTO{
					Category: "Travel",
					Amount:   500,
				})
				Expect(err).To(HaveOccurred())
			})
		})

		Context("when an admin tries to submit", func() {
			It("should deny access", func() {
				_, err := submit(admin, "Travel", 500)
				Expect(err).To(Equal(internal.ErrAccessDenied))
			})
		})
	})

	Describe("DecideExpense", func() {
		var pending *expense.Expense

		BeforeEach(func() {
			var err error
			pending, err = submit(employee, "Travel", 500)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should approve a pending expense and stamp the decision time", func() {
			decided, err := service.DecideExpense(admin, pending.ID, expense.DecideExpenseDTO{Status: expense.StatusApproved})

			Expect(err).ToNot(HaveOccurred())
			Expect(decided.Status).To(Equal(expense.StatusApproved))
			Expect(decided.DecidedAt).ToNot(BeNil())
		})

		It("should reject a pending expense", func() {
			decided, err := service.DecideExpense(admin, pending.ID, expense.DecideExpenseDTO{Status: expense.StatusRejected})

			Expect(err).ToNot(HaveOccurred())
			Expect(decided.Status).To(Equal(expense.StatusRejected))
		})

		It("should treat a second decision as a conflict", func() {
			_, err := service.DecideExpense(admin, pending.ID, expense.DecideExpenseDTO{Status: expense.StatusApproved})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.DecideExpense(admin, pending.ID, expense.DecideExpenseDTO{Status: expense.StatusRejected})
			Expect(err).To(Equal(internal.ErrExpenseDecided))

			current, err := mockRepo.GetByID(pending.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(current.Status).To(Equal(expense.StatusApproved))
		})

		It("should reject an unknown decision value", func() {
			_, err := service.DecideExpense(admin, pending.ID, expense.DecideExpenseDTO{Status: "maybe"})
			Expect(err).To(HaveOccurred())
		})

		It("should return not found for an unknown expense", func() {
			_, err := service.DecideExpense(admin, 999, expense.DecideExpenseDTO{Status: expense.StatusApproved})
			Expect(err).To(Equal(internal.ErrExpenseNotFound))
		})

		It("should surface repository failures as internal errors, not as not found", func() {
			mockRepo.getError = errors.New("connection refused")

			_, err := service.DecideExpense(admin, pending.ID, expense.DecideExpenseDTO{Status: expense.StatusApproved})

			Expect(err).ToNot(Equal(internal.ErrExpenseNotFound))
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
		})

		It("should deny employees", func() {
			_, err := service.DecideExpense(employee, pending.ID, expense.DecideExpenseDTO{Status: expense.StatusApproved})
			Expect(err).To(Equal(internal.ErrAccessDenied))
		})
	})

	Describe("ListExpenses", func() {
		BeforeEach(func() {
			other := internal.Principal{UserID: 11, Role: internal.RoleEmployee, Name: "Bob"}
			_, err := submit(employee, "Travel", 500)
			Expect(err).ToNot(HaveOccurred())
			_, err = submit(other, "Meals", 200)
			Expect(err).ToNot(HaveOccurred())
			_, err = submit(employee, "Equipment", 900)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should return every expense for an admin in insertion order", func() {
			expenses, err := service.ListExpenses(admin)

			Expect(err).ToNot(HaveOccurred())
			Expect(expenses).To(HaveLen(3))
			Expect(expenses[0].Category).To(Equal("Travel"))
			Expect(expenses[1].Category).To(Equal("Meals"))
			Expect(expenses[2].Category).To(Equal("Equipment"))
		})

		It("should return only the caller's expenses for an employee", func() {
			expenses, err := service.ListExpenses(employee)

			Expect(err).ToNot(HaveOccurred())
			Expect(expenses).To(HaveLen(2))
			for _, e := range expenses {
				Expect(e.EmployeeID).To(Equal(int64(10)))
			}
		})
	})

	Describe("ListCategories", func() {
		It("should return the recommended categories", func() {
			Expect(service.ListCategories()).To(Equal([]string{
				"Travel", "Meals", "Equipment", "Training", "Office Supplies",
			}))
		})
	})
})
