// Package ws serves dashboard sessions over websockets. Every
// connection keeps its own status selector.
package ws

import (
	"sync"

	"github.com/apex/log"

	"potholes/backend/metrics"
)

// Hub tracks connected sessions. It does not broadcast, sessions
// never share state.
type Hub struct {
	sessions   map[*Session]bool
	register   chan *Session
	unregister chan *Session
	stop       chan struct{}
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[*Session]bool),
		register:   make(chan *Session),
		unregister: make(chan *Session),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until Stop is called.
func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case s := <-h.register:
			h.mu.Lock()
			h.sessions[s] = true
			n := len(h.sessions)
			h.mu.Unlock()
			metrics.Sessions.Set(float64(n))
			log.WithField("session", s.id).Infof("Session registered, %d connected", n)

		case s := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.sessions[s]; ok {
				delete(h.sessions, s)
				s.closeSend()
			}
			n := len(h.sessions)
			h.mu.Unlock()
			metrics.Sessions.Set(float64(n))
			log.WithField("session", s.id).Infof("Session unregistered, %d connected", n)

		case <-h.stop:
			h.mu.Lock()
			for s := range h.sessions {
				s.closeSend()
				delete(h.sessions, s)
			}
			h.mu.Unlock()
			metrics.Sessions.Set(0)
			return
		}
	}
}

// Stop closes every session and ends Run.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) add(s *Session) bool {
	select {
	case h.register <- s:
		return true
	case <-h.stop:
		return false
	}
}

func (h *Hub) remove(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.stop:
	}
}
