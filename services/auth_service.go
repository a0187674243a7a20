package services

import (
	"errors"
	"time"

	"github.com/Sumanth1803/DietPlan/logger"
	"github.com/Sumanth1803/DietPlan/models"
	"github.com/Sumanth1803/DietPlan/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidMFACode     = errors.New("invalid MFA code")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, fullName string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two registrations can pass the existence check at once; the
		// unique index on email catches the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login checks credentials and returns a signed token. When the account
// has MFA enabled no token is issued yet: a code is mailed and the second
// return value is true.
func (s *AuthService) Login(email, password string) (string, bool, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", false, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", false, ErrInvalidCredentials
	}

	if user.MFAEnabled {
		code := utils.GenerateMFACode()
		user.MFACode = code
		if err := s.db.Save(&user).Error; err != nil {
			return "", false, err
		}
		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			return "", false, err
		}
		return "", true, nil
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", false, err
	}
	return token, false, nil
}

func (s *AuthService) VerifyMFA(email, code string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidMFACode
	}
	if user.MFACode == "" || user.MFACode != code {
		return "", ErrInvalidMFACode
	}

	user.MFACode = ""
	if err := s.db.Save(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// ForgotPassword stores a short-lived reset code and mails it. The caller
// gets no signal whether the email exists.
func (s *AuthService) ForgotPassword(email string) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	code := utils.GenerateRandomCode(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return
	}

	if err := utils.SendResetEmail(user.Email, code); err != nil {
		logger.Log.Errorw("failed to send reset email", "err", err)
	}
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return ErrInvalidResetToken
	}
	if user.ResetToken == "" || time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
