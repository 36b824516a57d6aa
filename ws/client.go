package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait: bir mesajı yazmak için maksimum bekleme süresi.
	writeWait = 10 * time.Second

	// pongWait: client'ın pong cevabı için beklenen maksimum süre.
	pongWait = 60 * time.Second

	// pingPeriod: ping aralığı — pongWait'ten kısa olmak ZORUNDA.
	pingPeriod = (pongWait * 9) / 10

	// sendBufferSize: client başına outbound event buffer'ı.
	sendBufferSize = 64
)

// Client, tek bir WebSocket bağlantısını temsil eder.
// Her bağlantı için iki goroutine çalışır: ReadPump (sadece kontrol
// frame'leri ve kapanış tespiti için) ve WritePump (event yazımı).
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// ReadPump, bağlantıdan okur. Kanal publish-only olduğu için gelen
// mesajlar yok sayılır; okuma döngüsü sadece kapanışı ve pong'ları
// tespit etmek için gereklidir.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// WritePump, send channel'ından gelen event'leri bağlantıya yazar ve
// periyodik ping gönderir. send kapanırsa (hub shutdown veya unregister)
// client'a close frame yazıp çıkar.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
