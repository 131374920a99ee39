package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

// productRow mirrors the products table; variants and images live in side
// tables and are loaded separately.
type productRow struct {
	ID              uuid.UUID `db:"id"`
	Slug            string    `db:"slug"`
	Name            string    `db:"name"`
	Price           float64   `db:"price"`
	DiscountedPrice *float64  `db:"discounted_price"`
	CreatedAt       sql.NullTime `db:"created_at"`
	UpdatedAt       sql.NullTime `db:"updated_at"`
}

func (row *productRow) toDomain() *domain.Product {
	p := &domain.Product{
		ID:              row.ID,
		Slug:            row.Slug,
		Name:            row.Name,
		Price:           row.Price,
		DiscountedPrice: row.DiscountedPrice,
	}
	if row.CreatedAt.Valid {
		p.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		p.UpdatedAt = row.UpdatedAt.Time
	}
	return p
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return r.hydrate(ctx, &row)
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM products WHERE slug = $1", slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.GetBySlug: %w", err)
	}
	return r.hydrate(ctx, &row)
}

func (r *productRepo) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	var rows []productRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM products
		 WHERE name ILIKE '%' || $1 || '%' OR slug ILIKE '%' || $1 || '%'
		 ORDER BY name LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, fmt.Errorf("productRepo.Search: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		p, err := r.hydrate(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// hydrate attaches the product's variants and image URLs.
func (r *productRepo) hydrate(ctx context.Context, row *productRow) (*domain.Product, error) {
	p := row.toDomain()

	err := r.db.SelectContext(ctx, &p.Variants,
		"SELECT variant FROM product_variants WHERE product_id = $1 ORDER BY position", p.ID)
	if err != nil {
		return nil, fmt.Errorf("productRepo.hydrate variants: %w", err)
	}

	err = r.db.SelectContext(ctx, &p.Images,
		"SELECT url FROM product_images WHERE product_id = $1 ORDER BY position", p.ID)
	if err != nil {
		return nil, fmt.Errorf("productRepo.hydrate images: %w", err)
	}
	return p, nil
}
