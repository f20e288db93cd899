package netsync

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// writeTimeout bounds every write to a single peer.
const writeTimeout = 3 * time.Second

// Authority is the seed-deciding side. It is an http.Handler that upgrades
// every request to a websocket peer connection.
type Authority struct {
	logger *log.Logger

	mu      sync.Mutex
	peers   map[*websocket.Conn]struct{}
	current *Announcement
}

// NewAuthority returns an Authority that logs through logger, or
// log.Default() when logger is nil.
func NewAuthority(logger *log.Logger) *Authority {
	if logger == nil {
		logger = log.Default()
	}

	return &Authority{logger: logger, peers: make(map[*websocket.Conn]struct{})}
}

// ServeHTTP accepts a peer, sends it the current announcement if any, and
// keeps the connection registered until the peer leaves.
func (a *Authority) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		a.logger.Printf("netsync: accept %s: %v", r.RemoteAddr, err)
		return
	}

	// The current level goes out under the lock, so it always precedes
	// later announcements.
	a.mu.Lock()
	a.peers[conn] = struct{}{}
	if a.current != nil {
		if err := a.send(r.Context(), conn, *a.current); err != nil {
			delete(a.peers, conn)
			a.mu.Unlock()
			a.logger.Printf("netsync: peer %s: %v", r.RemoteAddr, err)
			_ = conn.Close(websocket.StatusInternalError, "write failed")
			return
		}
	}
	n := len(a.peers)
	a.mu.Unlock()
	a.logger.Printf("netsync: peer %s joined (%d connected)", r.RemoteAddr, n)

	// Peers only listen; CloseRead reports when they go away.
	ctx := conn.CloseRead(context.Background())
	<-ctx.Done()

	a.remove(conn)
	_ = conn.Close(websocket.StatusNormalClosure, "")
	a.logger.Printf("netsync: peer %s left", r.RemoteAddr)
}

// Announce records ann as the current level and sends it to every peer.
// It returns the number of peers that received it; failing peers are
// closed and dropped.
func (a *Authority) Announce(ctx context.Context, ann Announcement) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.current = &ann
	delivered := 0
	for conn := range a.peers {
		if err := a.send(ctx, conn, ann); err != nil {
			a.logger.Printf("netsync: dropping peer: %v", err)
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(a.peers, conn)
			continue
		}
		delivered++
	}

	return delivered
}

// Current returns the last announcement, if any.
func (a *Authority) Current() (Announcement, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return Announcement{}, false
	}

	return *a.current, true
}

// Peers returns the number of connected peers.
func (a *Authority) Peers() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.peers)
}

func (a *Authority) remove(conn *websocket.Conn) {
	a.mu.Lock()
	delete(a.peers, conn)
	a.mu.Unlock()
}

// send writes ann to conn; callers hold a.mu.
func (a *Authority) send(ctx context.Context, conn *websocket.Conn, ann Announcement) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return wsjson.Write(ctx, conn, ann)
}
