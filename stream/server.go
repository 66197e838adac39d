package stream

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// maxMessageSize bounds an incoming viewer message; viewers only ever
// send pings, never board mutations (stream is read-only, per
// SPEC_FULL.md's non-goals), so this is generous.
const maxMessageSize = 4096

// OriginChecker reports whether a connecting client's origin is
// allowed. internal/config's ServeConfig.IsOriginAllowed satisfies
// this.
type OriginChecker func(origin, requestHost string) bool

// Logger is the minimal diagnostic sink Server accepts, satisfied by
// internal/logger's package-level functions via a thin adapter.
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// viewer wraps one connected websocket client, grounded on the
// teacher's internal/server/websocket_client.go WebSocketClient: a
// mutex-protected conn, since Broadcast and the read loop both touch it
// from different goroutines.
type viewer struct {
	id   uuid.UUID
	conn *websocket.Conn
	mu   sync.Mutex
}

func (v *viewer) writeJSON(payload any) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conn.WriteJSON(payload)
}

func (v *viewer) close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conn.Close()
}

// Server accepts websocket connections and broadcasts Snapshot values
// pushed to it via Broadcast.
type Server struct {
	upgrader      websocket.Upgrader
	originChecker OriginChecker

	mu      sync.Mutex
	viewers map[uuid.UUID]*viewer

	logger Logger
}

// NewServer builds a Server. checkOrigin may be nil, in which case every
// origin is accepted (the caller is expected to put this behind its own
// access control if that's not desired).
func NewServer(checkOrigin OriginChecker) *Server {
	s := &Server{
		originChecker: checkOrigin,
		viewers:       make(map[uuid.UUID]*viewer),
		logger:        noopLogger{},
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if s.originChecker == nil {
				return true
			}
			return s.originChecker(r.Header.Get("Origin"), r.Host)
		},
	}
	return s
}

// SetLogger installs a diagnostic sink. Passing nil restores the
// default no-op logger.
func (s *Server) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	s.logger = logger
}

// ViewerCount reports how many viewers are currently connected.
func (s *Server) ViewerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.viewers)
}

// HandleWS upgrades an incoming HTTP request to a websocket connection,
// registers it as a viewer, and blocks reading from it (discarding
// every message — viewers are read-only subscribers) until the
// connection closes, then unregisters it. Register it on a mux as the
// handler for the feed's path.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debugf("stream: upgrade failed: %v", err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	v := &viewer{id: uuid.New(), conn: conn}
	s.mu.Lock()
	s.viewers[v.id] = v
	s.mu.Unlock()
	s.logger.Debugf("stream: viewer %s connected (%d total)", v.id, s.ViewerCount())

	defer func() {
		s.mu.Lock()
		delete(s.viewers, v.id)
		s.mu.Unlock()
		v.close()
		s.logger.Debugf("stream: viewer %s disconnected (%d total)", v.id, s.ViewerCount())
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes snapshot to every connected viewer as JSON, dropping
// (and unregistering) any viewer whose write fails.
func (s *Server) Broadcast(snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	viewers := make([]*viewer, 0, len(s.viewers))
	for _, v := range s.viewers {
		viewers = append(viewers, v)
	}
	s.mu.Unlock()

	for _, v := range viewers {
		if err := v.writeJSON(json.RawMessage(payload)); err != nil {
			s.logger.Debugf("stream: dropping viewer %s: %v", v.id, err)
			s.mu.Lock()
			delete(s.viewers, v.id)
			s.mu.Unlock()
		}
	}
	return nil
}
