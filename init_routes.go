// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Login, health ve /ws dışındaki her endpoint auth middleware'dan geçer.
package main

import (
	"fmt"
	"net/http"

	"github.com/burakgns/istakip/middleware"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE
// tanımlanmalı. Örnek: "/api/users/me" → "/api/users/{id}" öncesinde,
// yoksa Go router "me" kelimesini bir id olarak yorumlar.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
) {
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Health check — token gerekmez
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"istakip"}`)
	})

	// Auth — public endpoint
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Users
	mux.Handle("GET /api/users/me", auth(h.User.Me))
	mux.Handle("GET /api/users", auth(h.User.List))
	mux.Handle("POST /api/users", auth(h.User.Create))
	mux.Handle("GET /api/users/{id}", auth(h.User.Get))
	mux.Handle("PUT /api/users/{id}", auth(h.User.Update))
	mux.Handle("DELETE /api/users/{id}", auth(h.User.Delete))

	// Accounts — cari hesaplar ve alt kaynakları
	mux.Handle("GET /api/accounts", auth(h.Account.List))
	mux.Handle("POST /api/accounts", auth(h.Account.Create))
	mux.Handle("GET /api/accounts/{id}", auth(h.Account.Get))
	mux.Handle("PUT /api/accounts/{id}", auth(h.Account.Update))
	mux.Handle("DELETE /api/accounts/{id}", auth(h.Account.Delete))
	mux.Handle("GET /api/accounts/{id}/summary", auth(h.Account.Summary))
	mux.Handle("GET /api/accounts/{id}/quotes", auth(h.Quote.ListByAccount))
	mux.Handle("GET /api/accounts/{id}/projects", auth(h.Project.ListByAccount))
	mux.Handle("GET /api/accounts/{id}/tasks", auth(h.Task.ListByAccount))
	mux.Handle("GET /api/accounts/{id}/transactions", auth(h.Transaction.ListByAccount))

	// Quotes
	mux.Handle("GET /api/quotes", auth(h.Quote.List))
	mux.Handle("POST /api/quotes", auth(h.Quote.Create))
	mux.Handle("GET /api/quotes/{id}", auth(h.Quote.Get))
	mux.Handle("PUT /api/quotes/{id}", auth(h.Quote.Update))
	mux.Handle("DELETE /api/quotes/{id}", auth(h.Quote.Delete))
	mux.Handle("GET /api/quotes/{id}/pdf", auth(h.Quote.PDF))

	// Projects
	mux.Handle("GET /api/projects", auth(h.Project.List))
	mux.Handle("POST /api/projects", auth(h.Project.Create))
	mux.Handle("GET /api/projects/{id}", auth(h.Project.Get))
	mux.Handle("PUT /api/projects/{id}", auth(h.Project.Update))
	mux.Handle("DELETE /api/projects/{id}", auth(h.Project.Delete))
	mux.Handle("GET /api/projects/{id}/tasks", auth(h.Task.ListByProject))

	// Tasks
	mux.Handle("GET /api/tasks", auth(h.Task.List))
	mux.Handle("POST /api/tasks", auth(h.Task.Create))
	mux.Handle("GET /api/tasks/{id}", auth(h.Task.Get))
	mux.Handle("PUT /api/tasks/{id}", auth(h.Task.Update))
	mux.Handle("PUT /api/tasks/{id}/status", auth(h.Task.UpdateStatus))
	mux.Handle("DELETE /api/tasks/{id}", auth(h.Task.Delete))

	// Transactions
	mux.Handle("GET /api/transactions", auth(h.Transaction.List))
	mux.Handle("POST /api/transactions", auth(h.Transaction.Create))
	mux.Handle("GET /api/transactions/{id}", auth(h.Transaction.Get))
	mux.Handle("PUT /api/transactions/{id}", auth(h.Transaction.Update))
	mux.Handle("DELETE /api/transactions/{id}", auth(h.Transaction.Delete))

	// Dashboard
	mux.Handle("GET /api/dashboard/stats", auth(h.Dashboard.Stats))
	mux.Handle("GET /api/dashboard/activities", auth(h.Dashboard.Activities))
	mux.Handle("GET /api/dashboard/upcoming-tasks", auth(h.Dashboard.UpcomingTasks))
	mux.Handle("GET /api/dashboard/active-projects", auth(h.Dashboard.ActiveProjects))
	mux.Handle("GET /api/dashboard/recent-quotes", auth(h.Dashboard.RecentQuotes))

	// Reports
	mux.Handle("GET /api/reports/financial", auth(h.Report.Financial))
	mux.Handle("GET /api/reports/projects", auth(h.Report.Projects))
	mux.Handle("GET /api/reports/quotes", auth(h.Report.Quotes))

	// WebSocket — token query parameter ile authenticate edilir
	//
	// Neden auth middleware kullanmıyoruz?
	// WebSocket upgrade sırasında tarayıcılar custom HTTP header gönderemez.
	// Bu yüzden JWT token URL query parameter olarak gönderilir:
	//   ws://server/ws?token=JWT_TOKEN
	// WS handler kendi içinde token doğrulaması yapar.
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)
}
