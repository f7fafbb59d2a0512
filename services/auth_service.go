package services

import (
	"log"
	"strings"
	"time"

	"backend/apperror"
	"backend/models"
	"backend/repositories"
	"backend/utils"
)

type RegisterInput struct {
	Username        string   `json:"username" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	ConfirmPassword string   `json:"confirmPassword" binding:"required"`
	Name            string   `json:"name"`
	Allergies       []string `json:"allergies"`
}

type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthService struct {
	users repositories.UserRepository

	// sendResetEmail is swapped out in tests.
	sendResetEmail func(to, token string) error
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users, sendResetEmail: utils.SendResetEmail}
}

// Register creates a new account after checking password confirmation and
// username/email uniqueness (case-insensitive). The stored password is a
// bcrypt hash, never the plaintext.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, apperror.ValidationFailed("passwords do not match", "confirmPassword")
	}

	if existing, err := s.users.GetByUsername(input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.Conflict("username already taken", "username")
	}

	if existing, err := s.users.GetByEmail(input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.Conflict("email already registered", "email")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	allergies := input.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Name:      input.Name,
		Allergies: allergies,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the username and compares the password against the stored
// bcrypt hash. Both failure modes return the same unauthorized error.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperror.Unauthorized("invalid username or password")
	}
	return user, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user", id)
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && !strings.EqualFold(input.Email, user.Email) {
		if existing, err := s.users.GetByEmail(input.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperror.Conflict("email already registered", "email")
		}
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateAllergies(userID uint, allergies []string) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if allergies == nil {
		allergies = []string{}
	}
	user.Allergies = allergies

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword issues a short-lived reset code and emails it. A missing
// account is not reported to the caller.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil || user == nil {
		return nil
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.users.Update(user); err != nil {
		return err
	}

	if err := s.sendResetEmail(user.Email, user.ResetToken); err != nil {
		log.Printf("reset email to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return apperror.ValidationFailed("password must be at least 6 characters", "new_password")
	}

	user, err := s.users.GetByResetToken(token)
	if err != nil {
		return err
	}
	if user == nil || time.Now().After(user.ResetTokenExp) {
		return apperror.ValidationFailed("invalid or expired token", "token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.users.Update(user)
}
