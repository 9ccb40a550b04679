package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/expense"
)

func TestExpenseRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ExpenseRepository Suite")
}

type SQLiteExpense struct {
	ID           int64      `gorm:"primaryKey"`
	EmployeeID   int64      `gorm:"column:employee_id;not null"`
	EmployeeName string     `gorm:"column:employee_name;not null"`
	Category     string     `gorm:"column:category;not null"`
	Amount       int64      `gorm:"column:amount;not null"`
	Description  string     `gorm:"column:description"`
	ExpenseDate  time.Time  `gorm:"column:expense_date"`
	Status       string     `gorm:"column:status;default:'pending'"`
	DecidedAt    *time.Time `gorm:"column:decided_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (SQLiteExpense) TableName() string {
	return "expenses"
}

var _ = Describe("ExpenseRepository", func() {
	var (
		db   *gorm.DB
		repo expense.Repository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteExpense{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewExpenseRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	newExpense := func(employeeID int64, category string, amount int64) *expense.Expense {
		return &expense.Expense{
			EmployeeID:   employeeID,
			EmployeeName: "Alice",
			Category:     category,
			Amount:       amount,
			Description:  "test expense",
			ExpenseDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:       expense.StatusPending,
			CreatedAt:    time.Now(),
		}
	}

	Describe("Create", func() {
		It("should create an expense and back-fill the ID", func() {
			exp := newExpense(1, "Travel", 500)

			err := repo.Create(exp)
			Expect(err).NotTo(HaveOccurred())
			Expect(exp.ID).To(BeNumerically(">", 0))
		})
	})

	Describe("GetByID", func() {
		It("should retrieve a created expense", func() {
			exp := newExpense(1, "Travel", 500)
			Expect(repo.Create(exp)).To(Succeed())

			retrieved, err := repo.GetByID(exp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.ID).To(Equal(exp.ID))
			Expect(retrieved.EmployeeID).To(Equal(int64(1)))
			Expect(retrieved.Category).To(Equal("Travel"))
			Expect(retrieved.Amount).To(Equal(int64(500)))
			Expect(retrieved.Status).To(Equal(expense.StatusPending))
		})

		It("should report a missing expense as not found", func() {
			_, err := repo.GetByID(999)
			Expect(err).To(Equal(internal.ErrExpenseNotFound))
		})
	})

	Describe("GetAll", func() {
		It("should return expenses in insertion order", func() {
			for _, c := range []string{"Travel", "Meals", "Equipment"} {
				Expect(repo.Create(newExpense(1, c, 100))).To(Succeed())
			}

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(all[0].Category).To(Equal("Travel"))
			Expect(all[1].Category).To(Equal("Meals"))
			Expect(all[2].Category).To(Equal("Equipment"))
		})
	})

	Describe("GetByEmployeeID", func() {
		It("should only return the employee's expenses", func() {
			Expect(repo.Create(newExpense(1, "Travel", 100))).To(Succeed())
			Expect(repo.Create(newExpense(2, "Meals", 200))).To(Succeed())
			Expect(repo.Create(newExpense(1, "Equipment", 300))).To(Succeed())

			mine, err := repo.GetByEmployeeID(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(2))
			Expect(mine[0].Category).To(Equal("Travel"))
			Expect(mine[1].Category).To(Equal("Equipment"))
		})
	})

	Describe("Update", func() {
		It("should persist a status change", func() {
			exp := newExpense(1, "Travel", 500)
			Expect(repo.Create(exp)).To(Succeed())

			exp.Approve()
			Expect(repo.Update(exp)).To(Succeed())

			retrieved, err := repo.GetByID(exp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Status).To(Equal(expense.StatusApproved))
			Expect(retrieved.DecidedAt).NotTo(BeNil())
		})
	})
})
