// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/burakgns/istakip/handlers"
	"github.com/burakgns/istakip/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Account     *handlers.AccountHandler
	Quote       *handlers.QuoteHandler
	Project     *handlers.ProjectHandler
	Task        *handlers.TaskHandler
	Transaction *handlers.TransactionHandler
	Dashboard   *handlers.DashboardHandler
	Report      *handlers.ReportHandler
	WS          *ws.Handler
}

// initHandlers, tüm handler'ları service dependency'leri ile oluşturur.
func initHandlers(svcs *Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		Auth:        handlers.NewAuthHandler(svcs.Auth),
		User:        handlers.NewUserHandler(svcs.User),
		Account:     handlers.NewAccountHandler(svcs.Account),
		Quote:       handlers.NewQuoteHandler(svcs.Quote),
		Project:     handlers.NewProjectHandler(svcs.Project),
		Task:        handlers.NewTaskHandler(svcs.Task),
		Transaction: handlers.NewTransactionHandler(svcs.Transaction),
		Dashboard:   handlers.NewDashboardHandler(svcs.Dashboard),
		Report:      handlers.NewReportHandler(svcs.Report),
		WS:          ws.NewHandler(hub, svcs.Auth),
	}
}
