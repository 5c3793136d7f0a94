// Package session keeps at most one calculation in flight per session.
package session

import (
	"net/http"
	"strings"
	"sync"
)

// Header carries the caller's session id.
const Header = "X-Session-ID"

// Guard is a set of busy flags keyed by session.
type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// TryAcquire marks key busy. It returns false when key is already busy; on
// success the returned release func must be called once the work is done.
func (g *Guard) TryAcquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.busy[key]; busy {
		return nil, false
	}
	g.busy[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight reports how many sessions are busy.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.busy)
}

// KeyFromRequest returns the session key of a request and false when the
// request carries no session id. Such requests are not guarded: callers
// sharing one address (behind a proxy or NAT) are not separate sessions.
func KeyFromRequest(r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(Header))
	if id == "" {
		return "", false
	}
	return "session:" + id, true
}
