package cart

import "sync"

// Store keeps one cart per session key. Carts live in memory only; they
// are session-scoped and never persisted.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart bound to key, creating an empty one on first use.
func (s *Store) Get(key string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[key]
	if !ok {
		c = New()
		s.carts[key] = c
	}
	return c
}

// Drop discards the cart bound to key. Used on sign-in so a guest cart
// never leaks into the authenticated session.
func (s *Store) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}
