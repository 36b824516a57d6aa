// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Tek bir Config nesnesi main.go'da oluşturulur ve katmanlara dağıtılır —
// kodun geri kalanında os.Getenv() çağrısı YOKTUR.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Desteklenen store driver'ları.
// "memory": map tabanlı, seed datalı, process-local store (varsayılan).
// "sqlite": ilişkisel store — DATABASE_PATH zorunludur.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı struct — her biri tek bir concern'ü temsil eder.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	JWT    JWTConfig
	CORS   CORSConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig, veri katmanı seçimi.
type StoreConfig struct {
	Driver       string // "memory" veya "sqlite"
	DatabasePath string // sqlite dosya yolu (ör: ./data/istakip.db)
}

// JWTConfig, token imzalama ayarları.
type JWTConfig struct {
	Secret      string // Token imzalama anahtarı — GİZLİ TUTULMALI
	ExpiryHours int    // Access token ömrü, saat cinsinden (varsayılan: 24)
}

// CORSConfig, izin verilen frontend origin'leri.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için);
// production'da gerçek env variable'lar kullanılır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	expiry, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	driver := getEnv("STORE_DRIVER", StoreDriverMemory)
	dbPath := getEnv("DATABASE_PATH", "")

	switch driver {
	case StoreDriverMemory:
		// dbPath kullanılmaz, boş olabilir
	case StoreDriverSQLite:
		// Bağlantı bilgisi olmadan sqlite backend'i başlatılamaz —
		// bu bir startup hatasıdır, request bazlı hata değil.
		if dbPath == "" {
			return nil, fmt.Errorf("DATABASE_PATH is required when STORE_DRIVER=sqlite")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (expected %q or %q)",
			driver, StoreDriverMemory, StoreDriverSQLite)
	}

	origins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Store: StoreConfig{
			Driver:       driver,
			DatabasePath: dbPath,
		},
		JWT: JWTConfig{
			Secret:      jwtSecret,
			ExpiryHours: expiry,
		},
		CORS: CORSConfig{
			AllowedOrigins: origins,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
