package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one
// execution; late arrivals block until the leader's result is in.
// Results are not cached past the call, so sequential calls with the
// same key each execute.
type SingleFlight struct {
	mu      sync.Mutex
	pending map[string]*flight
}

type flight struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn at most once per key at a time. The bool reports whether
// the result was shared from another caller's in-flight execution.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.pending == nil {
		g.pending = make(map[string]*flight)
	}
	if f, ok := g.pending[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight{done: make(chan struct{})}
	g.pending[key] = f
	g.mu.Unlock()

	f.val, f.err = fn()

	g.mu.Lock()
	delete(g.pending, key)
	g.mu.Unlock()
	close(f.done)

	return f.val, f.err, false
}
