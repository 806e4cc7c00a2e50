package services

import (
	"errors"
	"strings"
	"time"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"github.com/BillyRonico412/brestau-sub000/repository"
	"github.com/BillyRonico412/brestau-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login/register business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

var staffRoles = map[string]bool{
	"cooker": true,
	"server": true,
	"admin":  true,
}

// Register creates a new customer account; duplicate email is an error.
func (s *AuthService) Register(email, password, firstName, lastName string) (*entity.User, error) {
	return s.createUser(email, password, firstName, lastName, "customer")
}

// CreateStaff creates a staff account (cooker/server/admin). Only reachable
// through the admin routes.
func (s *AuthService) CreateStaff(email, password, firstName, lastName, role string) (*entity.User, error) {
	if !staffRoles[role] {
		return nil, errors.New("unknown staff role")
	}
	return s.createUser(email, password, firstName, lastName, role)
}

func (s *AuthService) createUser(email, password, firstName, lastName, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
