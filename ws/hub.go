// Package ws, dashboard'ların canlı güncellenmesi için tek yönlü
// WebSocket event yayınını yönetir.
//
// Akış: service katmanı başarılı bir mutasyondan sonra EventPublisher
// üzerinden event yayınlar → Hub tüm bağlı client'lara iletir →
// açık dashboard'lar ilgili listeyi yeniden çeker. Client'tan gelen
// mesajlar yok sayılır — bu kanal publish-only'dir.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
)

// EventPublisher, service katmanının event yayınlamak için kullandığı
// interface. Service'ler Hub'ın concrete struct'ına değil buna bağımlıdır —
// testlerde nil veya sahte publisher geçilebilir.
type EventPublisher interface {
	BroadcastToAll(event Event)
}

// Hub, tüm WebSocket bağlantılarını yöneten merkezi yapı.
// Run() goroutine'i register/unregister channel'larını dinler;
// client set'i mutex ile korunur çünkü BroadcastToAll herhangi bir
// request goroutine'inden çağrılır.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client

	// seq: her outbound event'e verilen artan sayaç — client tarafında
	// sıra kontrolü için.
	seq atomic.Int64

	closed atomic.Bool
}

// NewHub, yeni bir Hub oluşturur.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run, Hub'ın ana event loop'udur. main.go'da `go hub.Run()` ile başlatılır.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	slog.Debug("ws client connected", "component", "ws", "total", len(h.clients))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		slog.Debug("ws client disconnected", "component", "ws", "total", len(h.clients))
	}
}

// BroadcastToAll, tüm bağlı client'lara event gönderir.
// Yavaş client'ın send buffer'ı doluysa event o client için düşürülür —
// yayın hiçbir zaman request'i bloklamaz.
func (h *Hub) BroadcastToAll(event Event) {
	if h.closed.Load() {
		return
	}

	event.Seq = h.seq.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal ws event", "component", "ws", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// buffer dolu — client zaten kopmak üzere, event'i düşür
		}
	}
}

// Shutdown, tüm client bağlantılarını kapatır. Graceful shutdown'da
// HTTP server kapanmadan ÖNCE çağrılır.
func (h *Hub) Shutdown() {
	h.closed.Store(true)

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	slog.Info("ws hub shut down", "component", "ws")
}
