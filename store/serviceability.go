package store

import (
	"sync"

	"storefront-gateway/models"
)

// Serviceability holds the latest evaluation snapshot. Each evaluation
// replaces the snapshot wholesale; there is no merging.
type Serviceability struct {
	mu   sync.Mutex
	data *models.ServiceabilityResult
}

func NewServiceability() *Serviceability {
	return &Serviceability{}
}

func (s *Serviceability) Set(result *models.ServiceabilityResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = result
}

// Current returns the latest snapshot, or nil before the first evaluation.
func (s *Serviceability) Current() *models.ServiceabilityResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *Serviceability) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}

// FindProduct looks up a product in the snapshot's filtered menu.
func (s *Serviceability) FindProduct(productID uint) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return models.Product{}, false
	}
	for _, p := range s.data.MenuProducts {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}
