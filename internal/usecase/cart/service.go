package cart

import (
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/cart"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Summary is the cart as the client renders it.
type Summary struct {
	ShopID      int           `json:"shopId"`
	Items       []domain.Item `json:"items"`
	Total       int64         `json:"total"`
	Count       int           `json:"count"`
	Description string        `json:"description"`
}

func summarize(c *domain.Cart) Summary {
	snap := c.Snapshot()
	return Summary{
		ShopID:      snap.ShopID,
		Items:       snap.Items,
		Total:       snap.Total(),
		Count:       snap.Count(),
		Description: snap.Describe(),
	}
}

// Service holds one in-memory cart per owner. Carts are never persisted.
type Service struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewService() *Service {
	return &Service{carts: make(map[string]*domain.Cart)}
}

func (s *Service) cartFor(owner string) *domain.Cart {
	c, ok := s.carts[owner]
	if !ok {
		c = domain.New(0)
		s.carts[owner] = c
	}
	return c
}

func (s *Service) Get(owner string) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.cartFor(owner))
}

// Add puts one unit of serviceName in the cart. A service from another shop
// starts a fresh cart for that shop.
func (s *Service) Add(owner string, shopID int, serviceName string) (Summary, error) {
	if _, ok := catalog.FindShop(shopID); !ok {
		return Summary{}, httperr.ErrBusiness("shop_not_found")
	}
	svc, ok := catalog.FindService(serviceName)
	if !ok {
		return Summary{}, httperr.ErrBusiness("service_not_found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(owner)
	if c.ShopID != shopID {
		c = domain.New(shopID)
		s.carts[owner] = c
	}
	c.Add(svc)
	return summarize(c), nil
}

func (s *Service) SetQuantity(owner, name string, q int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(owner)
	if !c.SetQuantity(name, q) {
		return Summary{}, httperr.ErrBusiness("item_not_found")
	}
	return summarize(c), nil
}

// Step moves an item's quantity by one unit. Stepping down from 1 removes it.
func (s *Service) Step(owner, name string, delta int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(owner)
	var ok bool
	switch delta {
	case 1:
		ok = c.Increment(name)
	case -1:
		ok = c.Decrement(name)
	default:
		return Summary{}, httperr.ErrBusiness("invalid_request")
	}
	if !ok {
		return Summary{}, httperr.ErrBusiness("item_not_found")
	}
	return summarize(c), nil
}

func (s *Service) Remove(owner, name string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(owner)
	if !c.Remove(name) {
		return Summary{}, httperr.ErrBusiness("item_not_found")
	}
	return summarize(c), nil
}

func (s *Service) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, owner)
}

// Load replaces the cart wholesale, used when reopening a booking for edit.
func (s *Service) Load(owner string, shopID int, items []domain.Item) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.New(shopID)
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		c.Items = append(c.Items, it)
	}
	s.carts[owner] = c
	return summarize(c)
}

// Snapshot returns a detached copy of the owner's cart.
func (s *Service) Snapshot(owner string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartFor(owner).Snapshot()
}
