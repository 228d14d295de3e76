package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/auth"
	apperrors "github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/errors"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/security"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := r.users[user.Email]; exists {
		return apperrors.BadRequest("email already registered", nil)
	}
	user.ID = uuid.New()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user", nil)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.NotFound("user", nil)
	}
	return u, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtSvc := auth.NewJWTService("test-secret", 1)
	hasher := security.NewBcryptHasher(security.DefaultCost)
	return NewService(repo, jwtSvc, hasher), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "vol@example.org",
		Name:     "Test Volunteer",
		Password: "correct-horse",
		Role:     model.RoleVolunteer,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "vol@example.org",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleVolunteer, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "vol@example.org",
		Name:     "Test Volunteer",
		Password: "correct-horse",
		Role:     model.RoleVolunteer,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "vol@example.org",
		Password: "wrong-horse-1",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ghost@example.org",
		Password: "irrelevant1",
	})
	require.Error(t, err)

	// Unknown email and wrong password must be indistinguishable.
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
