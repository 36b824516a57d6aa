package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/repository"
)

const testSecret = "test-secret-key-not-for-production"

func newAuthTestEnv(t *testing.T) (AuthService, UserService) {
	t.Helper()

	store := repository.NewMemoryStore()
	userRepo := repository.NewMemoryUserRepo(store)

	authSvc := NewAuthService(userRepo, testSecret, 24)
	userSvc := NewUserService(userRepo)

	_, err := userSvc.Create(context.Background(), &models.CreateUserRequest{
		Username: "burak",
		Password: "gizli-sifre-123",
		Name:     "Burak Güneş",
		Email:    "burak@example.com",
	})
	require.NoError(t, err)

	return authSvc, userSvc
}

func TestLogin_Success(t *testing.T) {
	authSvc, _ := newAuthTestEnv(t)

	result, err := authSvc.Login(context.Background(), &models.LoginRequest{
		Username: "burak",
		Password: "gizli-sifre-123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	assert.Equal(t, "burak", result.User.Username)
	assert.Empty(t, result.User.PasswordHash) // hash response'a sızmaz (json:"-")

	// Dönen token doğrulanabilir olmalı
	claims, err := authSvc.ValidateAccessToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "burak", claims.Username)
	assert.NotEmpty(t, claims.ID) // jti her token'da benzersiz
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	authSvc, _ := newAuthTestEnv(t)
	ctx := context.Background()

	_, errWrongPass := authSvc.Login(ctx, &models.LoginRequest{
		Username: "burak", Password: "yanlis-sifre",
	})
	_, errNoUser := authSvc.Login(ctx, &models.LoginRequest{
		Username: "bilinmeyen", Password: "herhangi-bir-sey",
	})

	// İki durumda da aynı generic cevap — username enumeration engellenir
	require.ErrorIs(t, errWrongPass, pkg.ErrUnauthorized)
	require.ErrorIs(t, errNoUser, pkg.ErrUnauthorized)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	authSvc, _ := newAuthTestEnv(t)

	_, err := authSvc.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	authSvc, _ := newAuthTestEnv(t)

	result, err := authSvc.Login(context.Background(), &models.LoginRequest{
		Username: "burak", Password: "gizli-sifre-123",
	})
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	other := NewAuthService(repository.NewMemoryUserRepo(store), "baska-bir-secret", 24)

	_, err = other.ValidateAccessToken(result.Token)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestUserDelete_LastUserProtected(t *testing.T) {
	_, userSvc := newAuthTestEnv(t)
	ctx := context.Background()

	users, err := userSvc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	err = userSvc.Delete(ctx, users[0].ID)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	_, userSvc := newAuthTestEnv(t)

	_, err := userSvc.Create(context.Background(), &models.CreateUserRequest{
		Username: "burak",
		Password: "baska-sifre-456",
		Name:     "Başka Biri",
		Email:    "baska@example.com",
	})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}
