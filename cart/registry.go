package cart

import "sync"

// Registry owns one cart per session id. It replaces shared global cart
// state: every operation names its session explicitly, so independent
// sessions (and tests) never touch each other's cart.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// With runs fn against the session's cart while holding the registry lock,
// so two writes from the same session are never interleaved.
func (r *Registry) With(sessionID string, fn func(*Cart)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		c = &Cart{}
		r.carts[sessionID] = c
	}
	fn(c)
}

// Drop discards a session's cart, e.g. after checkout or logout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
