package websocket

import (
	"sync"

	"github.com/rs/zerolog"
)

// broadcast pairs a payload with the thread it belongs to
type broadcast struct {
	threadID int64
	payload  []byte
}

// Hub maintains the set of active clients grouped by conversation thread
// and fans serialized events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]bool

	send       chan broadcast
	register   chan *Client
	unregister chan *Client

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		send:       make(chan broadcast, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run processes registrations and broadcasts until the process exits.
// It is started once from bootstrap.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case b := <-h.send:
			h.fanOut(b)
		}
	}
}

// Broadcast delivers a serialized event to every client attached to the
// thread. It never blocks the caller.
func (h *Hub) Broadcast(threadID int64, payload []byte) {
	select {
	case h.send <- broadcast{threadID: threadID, payload: payload}:
	default:
		h.logger.Warn().Int64("threadID", threadID).Msg("Hub send queue full, dropping broadcast")
	}
}

// ClientCount returns the number of clients attached to a thread
func (h *Hub) ClientCount(threadID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[threadID])
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.threadID]; !ok {
		h.clients[client.threadID] = make(map[*Client]bool)
	}
	h.clients[client.threadID][client] = true

	h.logger.Info().
		Int64("threadID", client.threadID).
		Int64("userID", client.userID).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	threadClients, ok := h.clients[client.threadID]
	if !ok {
		return
	}
	if _, ok := threadClients[client]; !ok {
		return
	}

	delete(threadClients, client)
	close(client.outbound)
	if len(threadClients) == 0 {
		delete(h.clients, client.threadID)
	}

	h.logger.Info().
		Int64("threadID", client.threadID).
		Int64("userID", client.userID).
		Msg("Client unregistered")
}

func (h *Hub) fanOut(b broadcast) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients[b.threadID] {
		select {
		case client.outbound <- b.payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	// Slow clients are disconnected rather than allowed to back up the hub
	for _, client := range slow {
		h.unregisterClient(client)
	}
}
