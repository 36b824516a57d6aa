package ws

// Op, dashboard'a yayınlanan entity-change event'inin türü.
type Op string

const (
	OpCreated       Op = "created"
	OpUpdated       Op = "updated"
	OpDeleted       Op = "deleted"
	OpStatusChanged Op = "status_changed"
)

// Event, bir mutasyon sonrası tüm bağlı dashboard client'larına
// gönderilen bildirim. Payload minimal tutulur — client değişen
// entity'yi REST üzerinden yeniden çeker.
type Event struct {
	Op     Op     `json:"op"`
	Entity string `json:"entity"` // "account", "quote", "project", "task", "transaction"
	ID     int64  `json:"id"`
	Seq    int64  `json:"seq"`
}
