package postgres

import (
	"strings"
	"time"

	"gorm.io/gorm"

	userDatamodel "github.com/anshumat/payroll-management/internal/core/datamodel/user"
	"github.com/anshumat/payroll-management/internal/user"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *user.User) error {
	u.Email = strings.ToLower(u.Email)
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	dm := user.ToDataModel(u)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	u.ID = dm.ID
	return nil
}

func (r *UserRepository) GetByID(id int64) (*user.User, error) {
	var dm userDatamodel.User
	if err := r.db.Where("id = ?", id).First(&dm).Error; err != nil {
		return nil, err
	}
	return user.FromDataModel(&dm), nil
}

// GetByEmail matches case-insensitively; emails are stored lowercased.
func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var dm userDatamodel.User
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&dm).Error; err != nil {
		return nil, err
	}
	return user.FromDataModel(&dm), nil
}

func (r *UserRepository) ListEmployees() ([]*user.User, error) {
	var dms []*userDatamodel.User
	err := r.db.Where("role = ?", "employee").
		Order("id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(dms), nil
}

func (r *UserRepository) CountEmployees() (int64, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("role = ?", "employee").
		Count(&count).Error
	return count, err
}

// EnsureSeedUser creates the given user if no user with that email exists.
// Returns true when a row was inserted. Idempotent, safe to run at every
// process start.
func (r *UserRepository) EnsureSeedUser(u *user.User) (bool, error) {
	var existing userDatamodel.User
	err := r.db.Where("email = ?", strings.ToLower(u.Email)).First(&existing).Error
	if err == nil {
		u.ID = existing.ID
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	if err := r.Create(u); err != nil {
		return false, err
	}
	return true, nil
}
