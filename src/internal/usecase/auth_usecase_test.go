package usecase

import (
	"context"
	"testing"

	"momovender/src/internal/entity"
	"momovender/src/internal/model"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeAuthStore struct {
	existing map[string]bool
	created  *entity.Agent
	accounts []int64

	agent       *entity.Agent
	profile     *repository.ProfileRow
	newPassword string
}

func (f *fakeAuthStore) FindByID(ctx context.Context, id int64) (*entity.Agent, error) {
	if f.agent == nil || f.agent.ID != id {
		return nil, repository.ErrAgentNotFound
	}
	return f.agent, nil
}

func (f *fakeAuthStore) FindProfile(ctx context.Context, id int64) (*repository.ProfileRow, error) {
	if f.profile == nil || f.profile.ID != id {
		return nil, repository.ErrAgentNotFound
	}
	return f.profile, nil
}

func (f *fakeAuthStore) UpdateProfile(ctx context.Context, id int64, firstName, lastName, phone string) error {
	if f.profile != nil && f.profile.ID == id {
		f.profile.FirstName = firstName
		f.profile.LastName = lastName
		f.profile.Phone = phone
	}
	return nil
}

func (f *fakeAuthStore) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	f.newPassword = hashed
	return nil
}

func (f *fakeAuthStore) FindByEmailOrUsername(ctx context.Context, identity string) (*entity.Agent, error) {
	return nil, assert.AnError
}

func (f *fakeAuthStore) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	return f.existing[email] || f.existing[phone], nil
}

func (f *fakeAuthStore) Create(ctx context.Context, agent *entity.Agent) (int64, error) {
	agent.ID = 7
	f.created = agent
	return 7, nil
}

func (f *fakeAuthStore) EnsureAccount(ctx context.Context, agentID int64) error {
	f.accounts = append(f.accounts, agentID)
	return nil
}

func (f *fakeAuthStore) SetActive(ctx context.Context, id int64, active bool) error {
	return nil
}

func (f *fakeAuthStore) InsertLoginHistory(ctx context.Context, userID int64, deviceInfo, ipAddress string) error {
	return nil
}

func newAuthUseCase(store *fakeAuthStore) *AuthUseCase {
	return &AuthUseCase{
		Log:      log.Log{},
		Validate: validator.New(),
		Agents:   store,
	}
}

func TestBuildUsername(t *testing.T) {
	assert.Equal(t, "mensah4567", buildUsername("Mensah", "0241234567"))
	assert.Equal(t, "osei9900", buildUsername("Osei", "+233 20 999 9900"))
	assert.Equal(t, "vanderpuye123", buildUsername("Vander Puye", "123"))
}

func TestRegisterHashesPasswordAndProvisionsAccount(t *testing.T) {
	store := &fakeAuthStore{existing: map[string]bool{}}
	uc := newAuthUseCase(store)

	result := uc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Phone:     "0241234567",
		Role:      "employee",
		Password:  "secret123",
	})

	assert.NoError(t, result.Error)
	response := result.Data.(*model.RegisterResponse)
	assert.Equal(t, "mensah4567", response.Username)

	assert.NotEqual(t, "secret123", store.created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.created.Password), []byte("secret123")))
	assert.True(t, store.created.IsActive)
	assert.Equal(t, []int64{7}, store.accounts)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	store := &fakeAuthStore{existing: map[string]bool{"ama@example.com": true}}
	uc := newAuthUseCase(store)

	result := uc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Phone:     "0241234567",
		Role:      "employee",
		Password:  "secret123",
	})

	assert.Error(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 409, commonErr.Code)
	assert.Nil(t, store.created)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	uc := newAuthUseCase(&fakeAuthStore{existing: map[string]bool{}})

	result := uc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Phone:     "0241234567",
		Role:      "queen",
		Password:  "secret123",
	})

	assert.Error(t, result.Error)
}

func TestProfileMapsRowAndMissesWith404(t *testing.T) {
	store := &fakeAuthStore{profile: &repository.ProfileRow{
		ID:         7,
		FirstName:  "Ama",
		LastName:   "Mensah",
		Username:   "amamensah",
		Email:      "ama@example.com",
		Phone:      "0241234567",
		Role:       "employee",
		BranchName: "Adenta",
	}}
	uc := newAuthUseCase(store)

	result := uc.Profile(context.Background(), model.Principal{ID: 7, Role: "employee"})
	assert.NoError(t, result.Error)
	profile := result.Data.(*model.ProfileResponse)
	assert.Equal(t, "amamensah", profile.Username)
	assert.Equal(t, "Adenta", profile.BranchName)

	result = uc.Profile(context.Background(), model.Principal{ID: 99, Role: "employee"})
	assert.Error(t, result.Error)
	assert.Equal(t, 404, result.Error.(*httpError.CommonError).Code)
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("oldsecret"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	store := &fakeAuthStore{agent: &entity.Agent{ID: 7, Password: string(hashed)}}
	uc := newAuthUseCase(store)

	result := uc.ChangePassword(context.Background(), model.Principal{ID: 7}, &model.ChangePasswordRequest{
		CurrentPassword: "not-the-one",
		NewPassword:     "freshsecret",
	})

	assert.Error(t, result.Error)
	assert.Equal(t, 400, result.Error.(*httpError.CommonError).Code)
	assert.Empty(t, store.newPassword)
}

func TestChangePasswordStoresNewHash(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("oldsecret"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	store := &fakeAuthStore{agent: &entity.Agent{ID: 7, Password: string(hashed)}}
	uc := newAuthUseCase(store)

	result := uc.ChangePassword(context.Background(), model.Principal{ID: 7}, &model.ChangePasswordRequest{
		CurrentPassword: "oldsecret",
		NewPassword:     "freshsecret",
	})

	assert.NoError(t, result.Error)
	assert.NotEmpty(t, store.newPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.newPassword), []byte("freshsecret")))
}

func TestChangePasswordRejectsShortNewPassword(t *testing.T) {
	uc := newAuthUseCase(&fakeAuthStore{})

	result := uc.ChangePassword(context.Background(), model.Principal{ID: 7}, &model.ChangePasswordRequest{
		CurrentPassword: "oldsecret",
		NewPassword:     "abc",
	})

	assert.Error(t, result.Error)
	assert.Equal(t, 400, result.Error.(*httpError.CommonError).Code)
}
