package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/user"
)

// UserRepository is the slice of the user store auth needs.
type UserRepository interface {
	GetByEmail(email string) (*user.User, error)
	Create(u *user.User) error
}

type ServiceAPI interface {
	Login(dto LoginDTO) (*AuthResponse, error)
	Signup(dto SignupDTO) (*AuthResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

// Login verifies credentials and issues a self-contained access token.
func (s *Service) Login(dto LoginDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(dto.Email)
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(u.ID, internal.Role(u.Role), u.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	return &AuthResponse{Token: token, User: u}, nil
}

// Signup registers a new account and logs it in.
func (s *Service) Signup(dto SignupDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(dto.Email)
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, internal.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = string(internal.RoleEmployee)
	}

	u := &user.User{
		Email:        email,
		Name:         dto.Name,
		PasswordHash: string(hash),
		Role:         role,
		Department:   dto.Department,
	}

	if err := s.userRepo.Create(u); err != nil {
		return nil, internal.NewInternalError("failed to create user", err)
	}

	token, err := s.tokenGenerator.GenerateAccessToken(u.ID, internal.Role(u.Role), u.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
