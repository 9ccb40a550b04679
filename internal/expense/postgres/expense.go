package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anshumat/payroll-management/internal"
	expenseDatamodel "github.com/anshumat/payroll-management/internal/core/datamodel/expense"
	"github.com/anshumat/payroll-management/internal/expense"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(e *expense.Expense) error {
	dm := expense.ToDataModel(e)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	e.ID = dm.ID
	return nil
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var dm expenseDatamodel.Expense
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense.FromDataModel(&dm), nil
}

// GetByEmployeeID returns one employee's expenses in insertion order.
func (r *ExpenseRepository) GetByEmployeeID(employeeID int64) ([]*expense.Expense, error) {
	var dms []*expenseDatamodel.Expense
	err := r.db.Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) GetAll() ([]*expense.Expense, error) {
	var dms []*expenseDatamodel.Expense
	err := r.db.Order("id ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) Update(e *expense.Expense) error {
	return r.db.Save(expense.ToDataModel(e)).Error
}
