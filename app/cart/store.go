package cart

import "sync"

// Store guarda um carrinho por sessão, identificado pelo cart ID do cookie.
// Os carrinhos vivem só em memória: a sessão começa com carrinho vazio.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// GetOrCreate devolve o carrinho da sessão, criando um vazio se preciso.
func (s *Store) GetOrCreate(cartID string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[cartID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[cartID]; ok {
		return c
	}
	c = New()
	s.carts[cartID] = c
	return c
}

// Get devolve o carrinho da sessão ou nil.
func (s *Store) Get(cartID string) *Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[cartID]
}

// Delete descarta o carrinho da sessão.
func (s *Store) Delete(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
}

// TotalItems devolve a contagem de itens do carrinho da sessão, zero quando
// não existe carrinho.
func (s *Store) TotalItems(cartID string) int {
	if c := s.Get(cartID); c != nil {
		return c.TotalItems()
	}
	return 0
}
