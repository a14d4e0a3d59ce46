package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adhamyosry771-star/filex-design/config"
	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/utils"
)

type fakeUserStore struct {
	users          map[string]*models.User
	findByEmailErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(user *models.User) error {
	// The real repository stamps the id and join time on insert.
	user.ID = "user-" + user.Email
	user.JoinedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	// Like the repository: unknown address is not an error.
	return nil, nil
}

func (f *fakeUserStore) FindByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return u, nil
}

func (f *fakeUserStore) UpdateProfile(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) UpdatePreferences(userID, theme, language string) error {
	u, ok := f.users[userID]
	if !ok {
		return errors.New("no rows")
	}
	u.Theme = theme
	u.Language = language
	return nil
}

func (f *fakeUserStore) UpdateStatus(userID, status string) error {
	u, ok := f.users[userID]
	if !ok {
		return errors.New("no rows")
	}
	u.Status = status
	return nil
}

func (f *fakeUserStore) List() ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserStore) Delete(id string) error {
	delete(f.users, id)
	return nil
}

var testAdminEmails = []string{
	"farida@flexdesign.com",
	"admin1@flexdesign.com",
	"admin2@flexdesign.com",
	"supervisor@flexdesign.com",
}

func newTestAuthService(store UserStore) *AuthService {
	return &AuthService{users: store, adminEmails: testAdminEmails}
}

func TestRoleForEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	tests := []struct {
		email string
		want  string
	}{
		{"farida@flexdesign.com", models.RoleAdmin},
		{"admin1@flexdesign.com", models.RoleAdmin},
		{"admin2@flexdesign.com", models.RoleAdmin},
		{"supervisor@flexdesign.com", models.RoleAdmin},
		{"FARIDA@FLEXDESIGN.COM", models.RoleAdmin},
		{"sara@x.com", models.RoleUser},
		{"admin3@flexdesign.com", models.RoleUser},
		{"farida@flexdesign.com.evil.com", models.RoleUser},
		{"", models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.want, svc.RoleForEmail(tt.email))
		})
	}
}

func TestRegisterAssignsUserRoleAndActiveStatus(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	result, err := svc.Register(models.RegisterRequest{
		Name:     "Sara",
		Email:    "sara@x.com",
		Password: "pw1234",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, result.User.Role)
	require.Equal(t, models.StatusActive, result.User.Status)
	require.Equal(t, "Sara", result.User.Name)
	require.NotEmpty(t, result.Token)
	require.False(t, result.User.JoinedAt.IsZero())
}

func TestRegisterAllowListedEmailBecomesAdmin(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	result, err := svc.Register(models.RegisterRequest{
		Name:     "Farida",
		Email:    "farida@flexdesign.com",
		Password: "pw1234",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, result.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{Name: "Sara2", Email: "sara@x.com", Password: "pw5678"})
	require.Error(t, err)
}

func TestLoginBannedAccountNeverGetsToken(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	user, err := store.FindByEmail("sara@x.com")
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(user.ID, models.StatusBanned))

	result, err := svc.Login(models.LoginRequest{Email: "sara@x.com", Password: "pw1234"})
	require.ErrorIs(t, err, ErrAccountDisabled)
	require.Nil(t, result)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	result, err := svc.Login(models.LoginRequest{Email: "sara@x.com", Password: "wrong"})
	require.Error(t, err)
	require.Nil(t, result)
}

func TestLoginSuccessReturnsValidToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	result, err := svc.Login(models.LoginRequest{Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, claims.UserID)
	require.Equal(t, "sara@x.com", claims.Email)
	require.Equal(t, models.RoleUser, claims.Role)
}

func TestCurrentUserEnforcesBanOnEveryDelivery(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	user, err := store.FindByEmail("sara@x.com")
	require.NoError(t, err)

	got, err := svc.CurrentUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	require.NoError(t, store.UpdateStatus(user.ID, models.StatusBanned))

	got, err = svc.CurrentUser(user.ID)
	require.ErrorIs(t, err, ErrAccountDisabled)
	require.Nil(t, got)
}

func TestRegisterSurfacesLookupErrors(t *testing.T) {
	store := newFakeUserStore()
	store.findByEmailErr = errors.New("connection refused")
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.ErrorContains(t, err, "connection refused")
	require.Empty(t, store.users)
}

func TestUpdateProfileRemovesReplacedAvatar(t *testing.T) {
	oldCfg := config.AppConfig
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}
	t.Cleanup(func() { config.AppConfig = oldCfg })

	avatarDir := filepath.Join(config.AppConfig.UploadDir, "avatars")
	require.NoError(t, os.MkdirAll(avatarDir, 0o755))
	oldPath := filepath.Join(avatarDir, "old.png")
	require.NoError(t, os.WriteFile(oldPath, []byte("png"), 0o644))

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	user, err := store.FindByEmail("sara@x.com")
	require.NoError(t, err)
	user.Avatar = "/uploads/avatars/old.png"

	updated, err := svc.UpdateProfile(user.ID, models.UpdateProfileRequest{Avatar: "/uploads/avatars/new.png"})
	require.NoError(t, err)
	require.Equal(t, "/uploads/avatars/new.png", updated.Avatar)

	_, statErr := os.Stat(oldPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestUpdateProfileNameOnlyKeepsAvatarFile(t *testing.T) {
	oldCfg := config.AppConfig
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}
	t.Cleanup(func() { config.AppConfig = oldCfg })

	avatarDir := filepath.Join(config.AppConfig.UploadDir, "avatars")
	require.NoError(t, os.MkdirAll(avatarDir, 0o755))
	avatarPath := filepath.Join(avatarDir, "keep.png")
	require.NoError(t, os.WriteFile(avatarPath, []byte("png"), 0o644))

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	user, err := store.FindByEmail("sara@x.com")
	require.NoError(t, err)
	user.Avatar = "/uploads/avatars/keep.png"

	_, err = svc.UpdateProfile(user.ID, models.UpdateProfileRequest{Name: "Sara B."})
	require.NoError(t, err)

	_, statErr := os.Stat(avatarPath)
	require.NoError(t, statErr)
}

func TestToggleBanIsAnExactInvolution(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(models.RegisterRequest{Name: "Sara", Email: "sara@x.com", Password: "pw1234"})
	require.NoError(t, err)

	user, err := store.FindByEmail("sara@x.com")
	require.NoError(t, err)

	status, err := svc.ToggleBan(user.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusBanned, status)

	status, err = svc.ToggleBan(user.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, status)
}
