// Command seedbanks writes the built-in financing partner table into the
// bank_providers tables so the catalog API can serve it.
// Usage: go run ./cmd/seedbanks
package main

import (
	"context"
	"log"
	"time"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := postgres.NewBankProviderRepo(db)
	providers := emi.DefaultProviders()
	for i := range providers {
		if err := repo.Upsert(ctx, &providers[i]); err != nil {
			return err
		}
		log.Printf("seeded %s (%s) at %.2f%%", providers[i].Name, providers[i].ID, providers[i].AnnualRatePercent)
	}

	log.Printf("seeded %d bank providers", len(providers))
	return nil
}
