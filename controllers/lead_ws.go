package controller

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"quickfix/models"
)

// LeadFeed pushes newly created leads to connected dashboard clients so the
// pipeline view updates without polling.
type LeadFeed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewLeadFeed() *LeadFeed {
	return &LeadFeed{conns: make(map[*websocket.Conn]struct{})}
}

// Handle keeps a dashboard connection registered until the client hangs up.
// Inbound messages are drained and ignored; the feed is one-way.
func (f *LeadFeed) Handle(c *websocket.Conn) {
	defer c.Close()

	f.mu.Lock()
	f.conns[c] = struct{}{}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.conns, c)
		f.mu.Unlock()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast fans a new lead out to every connected client. Write failures
// drop the connection; the client reconnects on its own.
func (f *LeadFeed) Broadcast(lead *models.Lead) {
	event := struct {
		Event string       `json:"event"`
		Lead  *models.Lead `json:"lead"`
	}{
		Event: "lead.created",
		Lead:  lead,
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for c := range f.conns {
		if err := c.WriteJSON(event); err != nil {
			log.Printf("lead feed write failed, dropping client: %v", err)
			c.Close()
			delete(f.conns, c)
		}
	}
}
