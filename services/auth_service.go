package services

import (
	"errors"
	"log"
	"strings"

	"github.com/adhamyosry771-star/filex-design/config"
	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/repositories"
	"github.com/adhamyosry771-star/filex-design/utils"
)

// ErrAccountDisabled is returned on any login attempt against a banned
// account. The caller must never receive a token alongside it.
var ErrAccountDisabled = errors.New("this account has been disabled. Please contact support")

type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	UpdateProfile(user *models.User) error
	UpdatePreferences(userID, theme, language string) error
	UpdateStatus(userID, status string) error
	List() ([]models.User, error)
	Delete(id string) error
}

type WelcomeMailer interface {
	SendWelcomeEmail(toEmail, name string) error
}

type AuthService struct {
	users       UserStore
	adminEmails []string
	mailer      WelcomeMailer
}

func NewAuthService() *AuthService {
	svc := &AuthService{
		users:       repositories.NewUserRepository(),
		adminEmails: config.AppConfig.AdminEmails,
	}

	if mailer, err := models.NewEmailService(); err == nil {
		svc.mailer = mailer
	} else {
		log.Println("Email service disabled:", err)
	}

	return svc
}

// RoleForEmail assigns ADMIN only to addresses on the fixed allow-list.
func (s *AuthService) RoleForEmail(email string) string {
	email = strings.ToLower(email)
	for _, admin := range s.adminEmails {
		if email == admin {
			return models.RoleAdmin
		}
	}
	return models.RoleUser
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     s.RoleForEmail(req.Email),
		Status:   models.StatusActive,
		Theme:    "dark",
		Language: "ar",
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Println("Failed to send welcome email:", err)
		}
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	if user.IsBanned() {
		return nil, ErrAccountDisabled
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

// CurrentUser resolves the session user, enforcing the ban check on every
// delivery the way the old auth-state listener did.
func (s *AuthService) CurrentUser(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user.IsBanned() {
		return nil, ErrAccountDisabled
	}

	return user, nil
}

func (s *AuthService) UpdateProfile(userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	oldAvatar := user.Avatar

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.users.UpdateProfile(user); err != nil {
		return nil, err
	}

	// A replaced avatar has no remaining reference; drop the old file.
	if req.Avatar != "" && oldAvatar != "" && oldAvatar != req.Avatar {
		removeStoredImage(oldAvatar)
	}

	return user, nil
}

func (s *AuthService) UpdatePreferences(userID string, req models.UpdatePreferencesRequest) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != "" {
		user.Theme = req.Theme
	}
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := s.users.UpdatePreferences(user.ID, user.Theme, user.Language); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) AllUsers() ([]models.User, error) {
	return s.users.List()
}

func (s *AuthService) DeleteUser(userID string) error {
	return s.users.Delete(userID)
}

// ToggleBan flips ACTIVE<->BANNED exactly once and returns the new status.
func (s *AuthService) ToggleBan(userID string) (string, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return "", err
	}

	newStatus := models.StatusBanned
	if user.IsBanned() {
		newStatus = models.StatusActive
	}

	if err := s.users.UpdateStatus(userID, newStatus); err != nil {
		return "", err
	}

	return newStatus, nil
}
