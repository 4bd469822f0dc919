package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"wastewise/internal/analyzer"
	"wastewise/internal/models"
	"wastewise/internal/monitoring"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4 * 1024
	sendBuffer     = 16
	queueSize      = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HistorySource supplies the weekly history the assistant reasons over.
// provider.Fallback satisfies it.
type HistorySource interface {
	WeeklyData(ctx context.Context) []models.DailyRecord
}

// Handler serves the assistant chat over a websocket. Every connection is a
// session with its own id. While the session is open each inbound
// {"message": ...} gets exactly one reply: a ChatResponse, answered in arrival
// order, or an error reply when the message is invalid or the session
// already has queueSize messages waiting.
type Handler struct {
	analyzer *analyzer.Analyzer
	source   HistorySource
	monitor  *monitoring.Monitor
	logger   *slog.Logger
}

// NewHandler creates the websocket chat handler. monitor may be nil.
func NewHandler(a *analyzer.Analyzer, source HistorySource, monitor *monitoring.Monitor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{analyzer: a, source: source, monitor: monitor, logger: logger}
}

type session struct {
	id       string
	conn     *websocket.Conn
	send     chan []byte
	requests chan string
	done     chan struct{}
	once     sync.Once
	handler  *Handler
	logger   *slog.Logger
}

type inbound struct {
	Message string `json:"message"`
}

type errorReply struct {
	SessionID string `json:"session_id"`
	Error     string `json:"error"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	s := &session{
		id:       id,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		requests: make(chan string, queueSize),
		done:     make(chan struct{}),
		handler:  h,
		logger:   h.logger.With("session_id", id),
	}
	s.logger.Info("assistant session opened")

	go s.writePump()
	go s.replyLoop()
	go s.readPump()
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
		s.logger.Info("assistant session closed")
	})
}

func (s *session) readPump() {
	defer s.close()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket read failed", "error", err)
			}
			return
		}
		s.handleMessage(message)
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.close()
	}()

	for {
		select {
		case <-s.done:
			return
		case message := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

func (s *session) handleMessage(raw []byte) {
	var in inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		s.sendJSON(errorReply{SessionID: s.id, Error: "invalid message: " + err.Error()})
		return
	}
	if strings.TrimSpace(in.Message) == "" {
		s.sendJSON(errorReply{SessionID: s.id, Error: "message is required"})
		return
	}

	select {
	case s.requests <- in.Message:
		if h := s.handler; h.monitor != nil {
			h.monitor.Increment("chats")
		}
	default:
		s.sendJSON(errorReply{SessionID: s.id, Error: "too many pending messages"})
	}
}

// replyLoop answers queued messages one at a time off the read loop, so a
// slow chat delay does not stall pings
func (s *session) replyLoop() {
	h := s.handler
	for {
		select {
		case <-s.done:
			return
		case message := <-s.requests:
			ctx, cancel := context.WithTimeout(context.Background(), pongWait)
			history := h.source.WeeklyData(ctx)
			cancel()

			reply := <-h.analyzer.ChatAsync(message, history)
			reply.SessionID = s.id
			s.sendJSON(reply)
		}
	}
}

func (s *session) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding assistant reply", "error", err)
		return
	}

	select {
	case s.send <- data:
	case <-s.done:
	}
}
