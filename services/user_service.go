package services

import (
	"errors"

	"github.com/Sumanth1803/DietPlan/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// Profile is the identity mirror exposed over the API; password and
// pending codes never leave the service layer.
type Profile struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	MFAEnabled bool   `json:"mfa_enabled"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toProfile(&user), nil
}

func (s *UserService) UpdateProfile(userID uint, fullName *string, mfaEnabled *bool) (*Profile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if fullName != nil {
		user.FullName = *fullName
	}
	if mfaEnabled != nil {
		user.MFAEnabled = *mfaEnabled
		if !*mfaEnabled {
			user.MFACode = ""
		}
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return toProfile(&user), nil
}

func toProfile(u *models.User) *Profile {
	return &Profile{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		MFAEnabled: u.MFAEnabled,
		CreatedAt:  u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
