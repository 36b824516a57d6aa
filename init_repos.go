// Package main — Repository katmanı başlatma.
//
// initRepositories, STORE_DRIVER'a göre iki backing'den birini kurar:
//   - memory: seed verili, süreç içi store (varsayılan — kurulumsuz demo)
//   - sqlite: kalıcı, migration'lı store
//
// İki backing de aynı repository interface'lerini implement eder;
// service katmanı hangisinin arkada olduğunu bilmez.
package main

import (
	"fmt"
	"io/fs"

	"github.com/burakgns/istakip/config"
	"github.com/burakgns/istakip/database"
	"github.com/burakgns/istakip/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
//
// Neden struct? Ayrı değişkenler yerine tek struct kullanmak fonksiyon
// imzalarını temiz tutar ve yeni repository eklemeyi kolaylaştırır.
type Repositories struct {
	User        repository.UserRepository
	Account     repository.AccountRepository
	Quote       repository.QuoteRepository
	Project     repository.ProjectRepository
	Task        repository.TaskRepository
	Transaction repository.TransactionRepository
}

// initRepositories, seçili store driver'a göre repository'leri oluşturur.
// sqlite seçiliyse açılan DB handle'ı da döner — main kapanışta Close eder
// (memory'de nil'dir).
func initRepositories(cfg *config.Config) (*Repositories, *database.DB, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store, err := repository.NewSeededMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to seed memory store: %w", err)
		}
		return &Repositories{
			User:        repository.NewMemoryUserRepo(store),
			Account:     repository.NewMemoryAccountRepo(store),
			Quote:       repository.NewMemoryQuoteRepo(store),
			Project:     repository.NewMemoryProjectRepo(store),
			Task:        repository.NewMemoryTaskRepo(store),
			Transaction: repository.NewMemoryTransactionRepo(store),
		}, nil, nil

	case config.StoreDriverSQLite:
		// embed.FS kökü paket diziniyken migration dosyaları migrations/
		// altındadır — runMigrations kökünden .sql okur, o yüzden Sub şart.
		migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to access embedded migrations: %w", err)
		}

		db, err := database.New(cfg.Store.DatabasePath, migrations)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return &Repositories{
			User:        repository.NewSQLiteUserRepo(db.Conn),
			Account:     repository.NewSQLiteAccountRepo(db.Conn),
			Quote:       repository.NewSQLiteQuoteRepo(db.Conn),
			Project:     repository.NewSQLiteProjectRepo(db.Conn),
			Task:        repository.NewSQLiteTaskRepo(db.Conn),
			Transaction: repository.NewSQLiteTransactionRepo(db.Conn),
		}, db, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}
