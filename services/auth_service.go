package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dushanbe-eats/entity"
	"dushanbe-eats/repository"
	"dushanbe-eats/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLen = 6

type AuthService struct {
	Users     *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer account. At least one of email/phone is
// required; duplicates on either are rejected.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if email == "" && phone == "" {
		return nil, "", fmt.Errorf("%w: email or phone is required", ErrValidation)
	}
	if len(in.Password) < minPasswordLen {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	var emailPtr, phonePtr *string
	if email != "" {
		emailPtr = &email
	}
	if phone != "" {
		phonePtr = &phone
	}

	count, err := s.Users.CountByContact(emailPtr, phonePtr)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", fmt.Errorf("%w: user already exists", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	city := strings.TrimSpace(in.City)
	if city == "" {
		city = "Душанбе"
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    emailPtr,
		Phone:    phonePtr,
		Password: string(hashed),
		City:     city,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, roleOf(user), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login resolves an email-or-phone identifier plus password to a token.
func (s *AuthService) Login(identifier, password string) (*entity.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	user, err := s.Users.FindByEmailOrPhone(strings.ToLower(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// second try without lowering, phone numbers are case-free anyway
			user, err = s.Users.FindByEmailOrPhone(identifier)
		}
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid credentials", ErrValidation)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	token, err := utils.GenerateToken(user.ID, roleOf(user), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func roleOf(u *entity.User) string {
	switch {
	case u.IsAdmin:
		return "admin"
	case u.IsRestaurantOwner:
		return "owner"
	default:
		return "customer"
	}
}
