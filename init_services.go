// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"github.com/burakgns/istakip/config"
	"github.com/burakgns/istakip/services"
	"github.com/burakgns/istakip/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth        services.AuthService
	User        services.UserService
	Account     services.AccountService
	Quote       services.QuoteService
	Project     services.ProjectService
	Task        services.TaskService
	Transaction services.TransactionService
	Dashboard   services.DashboardService
	Report      services.ReportService
}

// initServices, tüm service'leri oluşturur.
// hub, mutasyon event'lerinin yayın noktasıdır — service'ler arasında
// paylaşılan dependency.
func initServices(repos *Repositories, hub ws.EventPublisher, cfg *config.Config) *Services {
	return &Services{
		Auth:        services.NewAuthService(repos.User, cfg.JWT.Secret, cfg.JWT.ExpiryHours),
		User:        services.NewUserService(repos.User),
		Account:     services.NewAccountService(repos.Account, repos.Transaction, hub),
		Quote:       services.NewQuoteService(repos.Quote, repos.Account, hub),
		Project:     services.NewProjectService(repos.Project, repos.Account, repos.Quote, hub),
		Task:        services.NewTaskService(repos.Task, repos.Account, repos.Project, hub),
		Transaction: services.NewTransactionService(repos.Transaction, repos.Account, hub),
		Dashboard:   services.NewDashboardService(repos.Account, repos.Quote, repos.Project, repos.Task, repos.Transaction),
		Report:      services.NewReportService(repos.Quote, repos.Project, repos.Transaction),
	}
}
