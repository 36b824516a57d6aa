package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/handlers"
	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/services"
)

func newAuthTestEnv(t *testing.T) (*AuthMiddleware, services.AuthService) {
	t.Helper()

	store := repository.NewMemoryStore()
	userRepo := repository.NewMemoryUserRepo(store)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, "test-secret-key-32-bytes-long!!!", 24)

	_, err := userSvc.Create(context.Background(), &models.CreateUserRequest{
		Username: "burak", Password: "gizli-sifre-123", Name: "Burak", Email: "burak@istakip.local",
	})
	require.NoError(t, err)

	return NewAuthMiddleware(authSvc, userRepo), authSvc
}

// probe, context'e konan kullanıcıyı yakalayan uç.
func probe(captured **models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := r.Context().Value(handlers.UserContextKey).(*models.User); ok {
			*captured = u
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequire_MissingHeader(t *testing.T) {
	mw, _ := newAuthTestEnv(t)

	var captured *models.User
	rec := httptest.NewRecorder()
	mw.Require(probe(&captured)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestRequire_WrongScheme(t *testing.T) {
	mw, _ := newAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	var captured *models.User
	mw.Require(probe(&captured)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_GarbageToken(t *testing.T) {
	mw, _ := newAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Authorization", "Bearer bu-bir-jwt-degil")
	rec := httptest.NewRecorder()

	var captured *models.User
	mw.Require(probe(&captured)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_ValidTokenPutsUserInContext(t *testing.T) {
	mw, authSvc := newAuthTestEnv(t)

	result, err := authSvc.Login(context.Background(), &models.LoginRequest{
		Username: "burak", Password: "gizli-sifre-123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	rec := httptest.NewRecorder()

	var captured *models.User
	mw.Require(probe(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "burak", captured.Username)
}
