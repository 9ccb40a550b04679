package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anshumat/payroll-management/internal"
	payrollDatamodel "github.com/anshumat/payroll-management/internal/core/datamodel/payroll"
	"github.com/anshumat/payroll-management/internal/payroll"
)

// SalarySlipRepository implements the payroll.Repository interface using GORM
type SalarySlipRepository struct {
	db *gorm.DB
}

func NewSalarySlipRepository(db *gorm.DB) payroll.Repository {
	return &SalarySlipRepository{db: db}
}

func (r *SalarySlipRepository) Create(s *payroll.SalarySlip) error {
	dm := payroll.ToDataModel(s)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	s.ID = dm.ID
	return nil
}

func (r *SalarySlipRepository) GetByID(id int64) (*payroll.SalarySlip, error) {
	var dm payrollDatamodel.SalarySlip
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrSalarySlipNotFound
		}
		return nil, err
	}
	return payroll.FromDataModel(&dm), nil
}

// GetByEmployeeID returns one employee's slips in insertion order.
func (r *SalarySlipRepository) GetByEmployeeID(employeeID int64) ([]*payroll.SalarySlip, error) {
	var dms []*payrollDatamodel.SalarySlip
	err := r.db.Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return payroll.FromDataModelSlice(dms), nil
}

func (r *SalarySlipRepository) GetAll() ([]*payroll.SalarySlip, error) {
	var dms []*payrollDatamodel.SalarySlip
	err := r.db.Order("id ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return payroll.FromDataModelSlice(dms), nil
}

func (r *SalarySlipRepository) Update(s *payroll.SalarySlip) error {
	return r.db.Save(payroll.ToDataModel(s)).Error
}
