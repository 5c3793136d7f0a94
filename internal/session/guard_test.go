package session

import (
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGuardOneInFlightPerKey(t *testing.T) {
	g := NewGuard()

	release, ok := g.TryAcquire("a")
	if !ok {
		t.Fatal("first acquire should succeed")
	}
	if _, ok := g.TryAcquire("a"); ok {
		t.Fatal("second acquire on a busy session should fail")
	}
	if rb, ok := g.TryAcquire("b"); !ok {
		t.Fatal("other sessions are independent")
	} else {
		rb()
	}

	release()
	release() // idempotent
	if g.InFlight() != 0 {
		t.Fatalf("expected no busy sessions, got %d", g.InFlight())
	}
	if r, ok := g.TryAcquire("a"); !ok {
		t.Fatal("acquire after release should succeed")
	} else {
		r()
	}
}

func TestGuardConcurrentAcquire(t *testing.T) {
	g := NewGuard()
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := g.TryAcquire("same"); ok {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	if wins.Load() != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins.Load())
	}
}

func TestKeyFromRequest(t *testing.T) {
	req := httptest.NewRequest("POST", "/labor-planning/calculate", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	if key, ok := KeyFromRequest(req); ok || key != "" {
		t.Errorf("request without session id should not be keyed, got %q", key)
	}
	req.Header.Set(Header, "  ")
	if _, ok := KeyFromRequest(req); ok {
		t.Error("blank session id should not be keyed")
	}
	req.Header.Set(Header, "abc")
	if key, ok := KeyFromRequest(req); !ok || key != "session:abc" {
		t.Errorf("header key = %q, %v", key, ok)
	}
}
