package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"potholes/backend/report"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	readLimit  = 512
	sendBuffer = 16
)

const (
	TypeSelect    = "select"
	TypeDashboard = "dashboard"
	TypeError     = "error"
)

// Request is what a client sends to change its selector.
type Request struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Message is what the server sends back.
type Message struct {
	Type      string      `json:"type"`
	Selector  string      `json:"selector,omitempty"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Render computes the payload for one selector. It is called on the
// session's own goroutine for every selection.
type Render func(report.Selector) interface{}

type Session struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	render Render

	// Only read and written by readPump.
	selector report.Selector

	mu     sync.Mutex
	closed bool
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve upgrades the request and runs a session starting from sel.
func Serve(hub *Hub, w http.ResponseWriter, r *http.Request, sel report.Selector, render Render) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	s := &Session{
		id:       uuid.NewString(),
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		render:   render,
		selector: sel,
	}
	if !hub.add(s) {
		conn.Close()
		return nil
	}
	go s.writePump()
	go s.readPump()
	return nil
}

func (s *Session) closeSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.send)
	}
}

func (s *Session) enqueue(m Message) {
	b, err := json.Marshal(m)
	if err != nil {
		log.WithField("session", s.id).Errorf("Failed to serialize message: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.send <- b:
	default:
		log.WithField("session", s.id).Warn("Send buffer full, dropping message")
	}
}

func (s *Session) push() {
	s.enqueue(Message{
		Type:      TypeDashboard,
		Selector:  s.selector.String(),
		Data:      s.render(s.selector),
		Timestamp: time.Now().UTC(),
	})
}

func (s *Session) handle(raw []byte) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		s.enqueue(Message{Type: TypeError, Data: "could not read JSON input", Timestamp: time.Now().UTC()})
		return
	}
	if req.Type != TypeSelect {
		s.enqueue(Message{Type: TypeError, Data: "unsupported message type " + req.Type, Timestamp: time.Now().UTC()})
		return
	}
	s.selector = report.ParseSelector(req.Status)
	log.WithFields(log.Fields{"session": s.id, "selector": s.selector.String()}).Debug("Selector changed")
	s.push()
}

func (s *Session) readPump() {
	defer func() {
		s.hub.remove(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(readLimit)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	s.push()
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithField("session", s.id).Errorf("WebSocket read error: %v", err)
			}
			return
		}
		s.handle(raw)
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case b, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
