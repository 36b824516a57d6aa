package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired, zorunlu env'leri test için doldurur.
// t.Setenv test bitince eski değerleri kendiliğinden geri yükler.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
}

// unsetenv, değişkeni test süresince gerçekten kaldırır.
// getEnv boş string'i "ayarlanmış" sayar — fallback ancak yoklukta devreye
// girer, o yüzden t.Setenv(k, "") yeterli değildir.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // restore'u t.Setenv'e bırak
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	unsetenv(t, "SERVER_PORT", "SERVER_HOST", "JWT_EXPIRY_HOURS", "STORE_DRIVER", "DATABASE_PATH", "CORS_ALLOWED_ORIGINS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_SQLiteRequiresPath(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "sqlite")
	unsetenv(t, "DATABASE_PATH")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_PATH")
}

func TestLoad_UnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestLoad_CORSOriginsSplitAndTrimmed(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://istakip.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://istakip.example.com"},
		cfg.CORS.AllowedOrigins,
	)
}
