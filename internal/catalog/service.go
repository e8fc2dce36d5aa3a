package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/loja-labs/backend-loja/internal/pricing"
	"github.com/loja-labs/backend-loja/internal/storage"
)

// ErrNotFound indicates the requested product could not be located.
var ErrNotFound = errors.New("product not found")

// Variant is a purchasable variation of a product with its own price.
type Variant struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Price pricing.Money `json:"price"`
}

// Product is a catalog entry. Cart lines snapshot its display fields at
// add time and never re-sync them.
type Product struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Price         pricing.Money  `json:"price"`
	OriginalPrice *pricing.Money `json:"originalPrice,omitempty"`
	Image         string         `json:"image,omitempty"`
	InStock       bool           `json:"inStock"`
	Variants      []Variant      `json:"variants,omitempty"`
}

// Variant returns the variant with the given id, if present.
func (p Product) Variant(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Service owns the read-only product index. Products are seeded at
// startup; an optional store caches rendered listings.
type Service struct {
	mu    sync.RWMutex
	byID  map[string]Product
	order []string

	Cache storage.Store
}

// NewService builds a catalog from the provided seed products.
func NewService(products []Product) *Service {
	s := &Service{byID: make(map[string]Product, len(products))}
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, exists := s.byID[p.ID]; !exists {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = p
	}
	return s
}

// GetProductByID looks up a product. The second return mirrors the
// collaborator contract: absent products are not an error.
func (s *Service) GetProductByID(_ context.Context, id string) (Product, bool) {
	if s == nil {
		return Product{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// GetBySlug resolves a product by its URL slug.
func (s *Service) GetBySlug(_ context.Context, slug string) (Product, error) {
	if s == nil {
		return Product{}, ErrNotFound
	}
	slug = strings.TrimSpace(slug)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.byID[id].Slug == slug {
			return s.byID[id], nil
		}
	}
	return Product{}, ErrNotFound
}

// List returns products in seed order, optionally filtered by a
// case-insensitive substring of the name.
func (s *Service) List(ctx context.Context, query string) []Product {
	if s == nil {
		return nil
	}
	query = strings.ToLower(strings.TrimSpace(query))

	cacheKey := ""
	if query == "" && s.Cache != nil {
		cacheKey = "catalog:list"
		var cached []Product
		if ok, err := s.Cache.LoadJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached
		}
	}

	s.mu.RLock()
	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	s.mu.RUnlock()

	if cacheKey != "" {
		_ = s.Cache.SaveJSON(ctx, cacheKey, out)
	}
	return out
}

// Replace swaps the whole index, used by the seeder.
func (s *Service) Replace(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]Product, len(products))
	s.order = s.order[:0]
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, exists := s.byID[p.ID]; !exists {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = p
	}
}
