package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// ProductRepository is the catalog lookup surface the wizard consumes.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// BankProviderRepository persists the financing-provider table so the
// catalog API can serve it; the in-process registry remains the source of
// truth for calculations.
type BankProviderRepository interface {
	List(ctx context.Context) ([]domain.BankProvider, error)
	Upsert(ctx context.Context, provider *domain.BankProvider) error
}
