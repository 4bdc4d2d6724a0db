// Package memory is the in-process store behind every repository port. One
// Store owns all mutable state; products, carts, orders and users live in
// indexed maps guarded by a single RWMutex that is only held for short copies.
//
// Cart mutations and checkout are serialised per user, and stock changes per
// product. Locks are always taken in this order: user, then products sorted
// by id, then the map lock.
package memory

import (
	"sync"
	"time"

	cart "github.com/dwikikusuma/shopfront/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopfront/internal/catalog/domain"
	order "github.com/dwikikusuma/shopfront/internal/order/domain"
	user "github.com/dwikikusuma/shopfront/internal/user/domain"
	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	products     map[string]catalog.Product
	productOrder []string

	carts map[string]cart.Cart

	orders       map[string]order.Order
	ordersByUser map[string][]string

	users       map[string]user.User
	userByEmail map[string]string

	locksMu      sync.Mutex
	userLocks    map[string]*sync.Mutex
	productLocks map[string]*sync.Mutex

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		products:     make(map[string]catalog.Product),
		carts:        make(map[string]cart.Cart),
		orders:       make(map[string]order.Order),
		ordersByUser: make(map[string][]string),
		users:        make(map[string]user.User),
		userByEmail:  make(map[string]string),
		userLocks:    make(map[string]*sync.Mutex),
		productLocks: make(map[string]*sync.Mutex),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Products() *Products { return &Products{s: s} }

func (s *Store) Carts() *Carts { return &Carts{s: s} }

func (s *Store) Orders() *Orders { return &Orders{s: s} }

func (s *Store) Users() *Users { return &Users{s: s} }

func (s *Store) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

func (s *Store) productLock(productID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.productLocks[productID]
	if !ok {
		l = &sync.Mutex{}
		s.productLocks[productID] = l
	}
	return l
}
