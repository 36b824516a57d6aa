package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/burakgns/istakip/models"
)

// TokenValidator, WebSocket upgrade sırasında JWT doğrulaması için.
// AuthService bu interface'i sağlar — ws paketi services'e bağımlı olmaz.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// Handler, GET /ws endpoint'ini yönetir.
type Handler struct {
	hub       *Hub
	validator TokenValidator
	upgrader  websocket.Upgrader
}

// NewHandler, constructor.
func NewHandler(hub *Hub, validator TokenValidator) *Handler {
	return &Handler{
		hub:       hub,
		validator: validator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin kontrolü CORS katmanında değil burada yapılmaz —
			// token doğrulaması bağlantının kimliğini zaten garanti eder.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection, WebSocket upgrade yapar ve client'ı hub'a kaydeder.
//
// Token URL query parameter olarak gelir (?token=JWT) — tarayıcılar
// WebSocket upgrade sırasında custom HTTP header gönderemez.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token query parameter required", http.StatusUnauthorized)
		return
	}

	if _, err := h.validator.ValidateAccessToken(token); err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("ws upgrade failed", "component", "ws", "error", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
