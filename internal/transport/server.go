package transport

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"lookandfeel/internal/logger"
	"lookandfeel/internal/lookandfeel"
	"lookandfeel/pkg/lnftypes"
)

// Routes served by Server.
const (
	PathTable      = "/v1/lookandfeel"
	PathSubscribe  = "/v1/lookandfeel/ws"
	PathInvalidate = "/v1/lookandfeel/invalidate"
	PathHealth     = "/healthz"
)

// ChangeFunc is called after the served table is replaced by one with different values. It
// runs while the server holds its publish lock and must not call back into the Server.
type ChangeFunc func(prev, next *lnftypes.FullLookAndFeel)

// Server hands the parent's current table to children and pushes replacements to subscribers.
//
// Every table the server serves gets the next sequence number. Publishing and subscriber
// registration are serialized by pubMu, so pushes leave in extraction order and a child
// never ends up on an older table than the one the extractor holds.
type Server struct {
	extractor *lookandfeel.Extractor
	conns     *ConnectionManager
	upgrader  websocket.Upgrader
	log       *log.Logger

	pubMu     sync.Mutex
	published *lnftypes.FullLookAndFeel
	seq       uint64

	mu       sync.Mutex
	onChange ChangeFunc
}

// NewServer creates a Server that serves tables from extractor.
func NewServer(extractor *lookandfeel.Extractor) *Server {
	return &Server{
		extractor: extractor,
		conns:     NewConnectionManager(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: logger.NewStyledLogger("transport"),
	}
}

// OnChange registers fn to run whenever the served table changes.
func (s *Server) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Subscribers returns the number of connected children.
func (s *Server) Subscribers() int {
	return s.conns.Len()
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+PathTable, s.handleTable)
	mux.HandleFunc("GET "+PathSubscribe, s.handleSubscribe)
	mux.HandleFunc("POST "+PathInvalidate, s.handleInvalidate)
	mux.HandleFunc("GET "+PathHealth, s.handleHealth)
	return mux
}

// Current returns the table children receive, extracting it if needed. A table that changed
// behind the server's back, through an Invalidate on the extractor, is pushed like a Publish.
func (s *Server) Current() *lnftypes.FullLookAndFeel {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	table, _, _ := s.commit()
	return table
}

// Publish handles a theme change: it invalidates the cache, extracts again, and pushes the new
// table to subscribers. Nothing is pushed when the new table equals the last published one.
// It reports whether the table changed.
func (s *Server) Publish() bool {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.extractor.Invalidate()
	_, _, changed := s.commit()
	return changed
}

// commit makes the extractor's current table the served one. Callers hold pubMu.
func (s *Server) commit() (*lnftypes.FullLookAndFeel, uint64, bool) {
	next := s.extractor.ExtractCurrent()
	prev := s.published

	if prev == nil {
		s.published = next
		s.seq++
		return next, s.seq, false
	}
	if prev == next {
		return next, s.seq, false
	}
	if prev.Equal(next) {
		s.published = next
		s.log.Debug("Theme unchanged, skipping push", "generation", next.Generation())
		return next, s.seq, false
	}

	s.published = next
	s.seq++
	delivered := s.conns.Broadcast(s.seq, ToRecord(next))
	s.log.Info("Pushed look and feel", "generation", next.Generation(), "entries", next.Len(), "peer", delivered)

	s.mu.Lock()
	onChange := s.onChange
	s.mu.Unlock()
	if onChange != nil {
		onChange(prev, next)
	}
	return next, s.seq, true
}

// subscribe registers conn and returns the table it must start from. Registration happens
// under pubMu, so every later push reaches conn and carries a higher sequence number.
func (s *Server) subscribe(conn *websocket.Conn) (*lnftypes.FullLookAndFeel, uint64) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	table, seq, _ := s.commit()
	s.conns.Add(conn)
	return table, seq
}

func (s *Server) handleTable(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ToRecord(s.Current()))
}

func (s *Server) handleInvalidate(w http.ResponseWriter, _ *http.Request) {
	changed := s.Publish()
	writeJSON(w, http.StatusOK, map[string]any{
		"changed":    changed,
		"generation": s.Current().Generation(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	table, seq := s.subscribe(conn)
	defer func() {
		s.conns.Remove(conn)
		_ = conn.Close()
	}()

	// A push that overtook the initial table already carried something newer.
	if _, err := s.conns.Send(conn, seq, ToRecord(table)); err != nil {
		s.log.Warn("Initial push failed", "peer", r.RemoteAddr, "error", err)
		return
	}
	s.log.Debug("Child subscribed", "peer", r.RemoteAddr)

	// Children never send anything; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.log.Debug("Child disconnected", "peer", r.RemoteAddr)
			return
		}
	}
}

// writeJSON encodes v before writing the header, so an encoding failure becomes a 500
// instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("writeJSON failed", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}
