package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/anshumat/payroll-management/internal/user"
)

func TestUserRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UserRepository Suite")
}

type SQLiteUser struct {
	ID           int64     `gorm:"primaryKey"`
	Email        string    `gorm:"column:email;not null;unique"`
	Name         string    `gorm:"column:name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;default:'employee'"`
	Department   string    `gorm:"column:department"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (SQLiteUser) TableName() string {
	return "users"
}

var _ = Describe("UserRepository", func() {
	var (
		db   *gorm.DB
		repo user.Repository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteUser{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewUserRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	newUser := func(email, role string) *user.User {
		return &user.User{
			Email:        email,
			Name:         "Test User",
			PasswordHash: "hash",
			Role:         role,
		}
	}

	Describe("Create and GetByEmail", func() {
		It("should store emails lowercased and look them up case-insensitively", func() {
			u := newUser("Mixed@Example.com", "employee")
			Expect(repo.Create(u)).To(Succeed())
			Expect(u.ID).To(BeNumerically(">", 0))

			found, err := repo.GetByEmail("MIXED@example.COM")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Email).To(Equal("mixed@example.com"))
		})
	})

	Describe("GetByID", func() {
		It("should return an error for a missing user", func() {
			_, err := repo.GetByID(999)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListEmployees and CountEmployees", func() {
		BeforeEach(func() {
			Expect(repo.Create(newUser("admin@example.com", "admin"))).To(Succeed())
			Expect(repo.Create(newUser("alice@example.com", "employee"))).To(Succeed())
			Expect(repo.Create(newUser("bob@example.com", "employee"))).To(Succeed())
		})

		It("should only list employee accounts, in insertion order", func() {
			employees, err := repo.ListEmployees()
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(2))
			Expect(employees[0].Email).To(Equal("alice@example.com"))
			Expect(employees[1].Email).To(Equal("bob@example.com"))
		})

		It("should count employees without the admin", func() {
			count, err := repo.CountEmployees()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})
	})

	Describe("EnsureSeedUser", func() {
		It("should create the user on first run and report it", func() {
			created, err := repo.EnsureSeedUser(newUser("seed@example.com", "admin"))
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
		})

		It("should be a no-op on subsequent runs", func() {
			_, err := repo.EnsureSeedUser(newUser("seed@example.com", "admin"))
			Expect(err).NotTo(HaveOccurred())

			created, err := repo.EnsureSeedUser(newUser("seed@example.com", "admin"))
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			count := int64(0)
			Expect(db.Model(&SQLiteUser{}).Where("email = ?", "seed@example.com").Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})
	})
})
