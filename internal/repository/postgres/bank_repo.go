package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
)

type bankProviderRepo struct {
	db *sqlx.DB
}

// NewBankProviderRepo creates a new PostgreSQL-backed BankProviderRepository.
func NewBankProviderRepo(db *sqlx.DB) port.BankProviderRepository {
	return &bankProviderRepo{db: db}
}

func (r *bankProviderRepo) List(ctx context.Context) ([]domain.BankProvider, error) {
	var providers []domain.BankProvider
	err := r.db.SelectContext(ctx, &providers,
		"SELECT id, name, annual_rate_percent FROM bank_providers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("bankProviderRepo.List: %w", err)
	}

	for i := range providers {
		err = r.db.SelectContext(ctx, &providers[i].TenureOptionsMonths,
			"SELECT tenure_months FROM bank_tenure_options WHERE bank_id = $1 ORDER BY tenure_months",
			providers[i].ID)
		if err != nil {
			return nil, fmt.Errorf("bankProviderRepo.List tenures: %w", err)
		}
	}
	return providers, nil
}

func (r *bankProviderRepo) Upsert(ctx context.Context, provider *domain.BankProvider) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bank_providers (id, name, annual_rate_percent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET name = EXCLUDED.name, annual_rate_percent = EXCLUDED.annual_rate_percent, updated_at = EXCLUDED.updated_at`,
		provider.ID, provider.Name, provider.AnnualRatePercent, now)
	if err != nil {
		return fmt.Errorf("bankProviderRepo.Upsert: %w", err)
	}

	_, err = r.db.ExecContext(ctx, "DELETE FROM bank_tenure_options WHERE bank_id = $1", provider.ID)
	if err != nil {
		return fmt.Errorf("bankProviderRepo.Upsert clear tenures: %w", err)
	}
	for _, months := range provider.TenureOptionsMonths {
		_, err = r.db.ExecContext(ctx,
			"INSERT INTO bank_tenure_options (bank_id, tenure_months) VALUES ($1, $2)",
			provider.ID, months)
		if err != nil {
			return fmt.Errorf("bankProviderRepo.Upsert tenure %d: %w", months, err)
		}
	}
	return nil
}
