package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/user"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	usersByEmail  map[string]*user.User
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserRepository{
		usersByEmail: map[string]*user.User{
			"employee@example.com": {ID: 1, Email: "employee@example.com", Name: "Employee", PasswordHash: string(hash), Role: "employee"},
			"admin@example.com":    {ID: 2, Email: "admin@example.com", Name: "Admin", PasswordHash: string(hash), Role: "admin"},
		},
		nextID: 3,
	}
}

func (m *mockUserRepository) GetByEmail(email string) (*user.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if u, exists := m.usersByEmail[email]; exists {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) Create(u *user.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	u.ID = m.nextID
	m.nextID++
	m.usersByEmail[u.Email] = u
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
		secret   = "test-secret-key-at-least-32-bytes!!"
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(secret, 15*time.Minute)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.Context("with valid credentials", func() {
			ginkgo.It("should return a token and the user", func() {
				resp, err := service.Login(LoginDTO{Email: "employee@example.com", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(resp.User.Email).To(gomega.Equal("employee@example.com"))
			})

			ginkgo.It("should issue a token that validates back to the same principal", func() {
				resp, err := service.Login(LoginDTO{Email: "admin@example.com", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(resp.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				principal, err := claims.Principal()
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(principal.UserID).To(gomega.Equal(int64(2)))
				gomega.Expect(principal.Role).To(gomega.Equal(internal.RoleAdmin))
				gomega.Expect(principal.Name).To(gomega.Equal("Admin"))
			})
		})

		ginkgo.Context("with a wrong password", func() {
			ginkgo.It("should return invalid credentials", func() {
				resp, err := service.Login(LoginDTO{Email: "employee@example.com", Password: "wrong_password"})

				gomega.Expect(resp).To(gomega.BeNil())
				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("with an unknown email", func() {
			ginkgo.It("should return invalid credentials, not a not-found error", func() {
				resp, err := service.Login(LoginDTO{Email: "nobody@example.com", Password: "correct_password"})

				gomega.Expect(resp).To(gomega.BeNil())
				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("with missing fields", func() {
			ginkgo.It("should fail validation", func() {
				_, err := service.Login(LoginDTO{Email: "", Password: "x"})
				gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			})
		})
	})

	ginkgo.Describe("Signup", func() {
		ginkgo.It("should create an employee by default and log them in", func() {
			resp, err := service.Signup(SignupDTO{
				Email:    "New@Example.com",
				Password: "password123",
				Name:     "New Person",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(resp.User.Email).To(gomega.Equal("new@example.com"))
			gomega.Expect(resp.User.Role).To(gomega.Equal("employee"))
		})

		ginkgo.It("should reject an already registered email", func() {
			_, err := service.Signup(SignupDTO{
				Email:    "employee@example.com",
				Password: "password123",
				Name:     "Duplicate",
			})

			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailTaken))
		})

		ginkgo.It("should reject a short password", func() {
			_, err := service.Signup(SignupDTO{
				Email:    "short@example.com",
				Password: "short",
				Name:     "Short",
			})

			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.Signup(SignupDTO{
				Email:    "weird@example.com",
				Password: "password123",
				Name:     "Weird",
				Role:     "superuser",
			})

			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject garbage tokens", func() {
			_, err := service.ValidateAccessToken("not.a.token")
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject tokens signed with a different secret", func() {
			other := NewJWTTokenGenerator("another-secret-also-32-bytes-long!!", 15*time.Minute)
			token, err := other.GenerateAccessToken(1, internal.RoleEmployee, "Employee")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject expired tokens", func() {
			expiring := NewJWTTokenGenerator(secret, time.Nanosecond)
			token, err := expiring.GenerateAccessToken(1, internal.RoleEmployee, "Employee")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			time.Sleep(10 * time.Millisecond)

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrTokenExpired))
		})
	})
})

var _ = ginkgo.Describe("Claims", func() {
	ginkgo.It("should reject a non-numeric user id", func() {
		claims := &Claims{UserID: "abc", Role: "employee"}
		_, err := claims.Principal()
		gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
	})

	ginkgo.It("should reject an unknown role", func() {
		claims := &Claims{UserID: "1", Role: "superuser"}
		_, err := claims.Principal()
		gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
	})
})
