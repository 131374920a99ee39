package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
)

// ProductService exposes catalog reads for the wizard: the product being
// financed and the typeahead lookup used to pick one.
type ProductService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// Search runs the debounced typeahead lookup. The clientKey groups
	// keystrokes from one caller; stale reports that a newer query from the
	// same caller superseded this one while it waited, in which case the
	// results must be discarded.
	Search(ctx context.Context, clientKey, query string) (results []domain.Product, stale bool, err error)
}

type productService struct {
	repo     port.ProductRepository
	debounce time.Duration
	maxHits  int

	mu          sync.Mutex
	generations map[string]uint64
}

// NewProductService creates the catalog read service.
func NewProductService(repo port.ProductRepository, debounce time.Duration, maxHits int) ProductService {
	return &productService{
		repo:        repo,
		debounce:    debounce,
		maxHits:     maxHits,
		generations: make(map[string]uint64),
	}
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Search waits out the debounce window before hitting the catalog. Each call
// bumps the caller's generation counter; when the wait ends on a superseded
// generation the query is dropped without touching the repository, and a
// result that arrives after yet another keystroke is reported stale so it
// never overwrites fresher hits.
func (s *productService) Search(ctx context.Context, clientKey, query string) ([]domain.Product, bool, error) {
	if query == "" {
		return nil, false, nil
	}

	gen := s.bump(clientKey)

	timer := time.NewTimer(s.debounce)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, true, nil
	case <-timer.C:
	}

	if s.current(clientKey) != gen {
		return nil, true, nil
	}

	results, err := s.repo.Search(ctx, query, s.maxHits)
	if err != nil {
		log.Printf("productService.Search: query %q failed: %v", query, err)
		return nil, false, err
	}

	if s.current(clientKey) != gen {
		return nil, true, nil
	}
	return results, false, nil
}

func (s *productService) bump(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key]++
	return s.generations[key]
}

func (s *productService) current(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key]
}
