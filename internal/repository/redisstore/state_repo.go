package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
)

// NewClient creates the Redis client for wizard-state snapshots.
func NewClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

type stateRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateRepo creates a Redis-backed ApplicationStateRepository. Snapshots
// expire with the session TTL so abandoned sessions clean themselves up.
func NewStateRepo(client *redis.Client, ttl time.Duration) port.ApplicationStateRepository {
	return &stateRepo{client: client, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return "emi:session:" + id.String()
}

// Save writes the snapshot. Document slots are excluded by the aggregate's
// JSON shape; binary blobs are never durably serialized.
func (r *stateRepo) Save(ctx context.Context, app *domain.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("stateRepo.Save marshal: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(app.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("stateRepo.Save: %w", err)
	}
	return nil
}

// Load reads a snapshot. A missing key or a corrupt payload both fall back
// to ErrSessionNotFound so the caller can start from a fresh state.
func (r *stateRepo) Load(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("stateRepo.Load: %w", err)
	}

	var app domain.Application
	if err := json.Unmarshal(data, &app); err != nil {
		log.Printf("stateRepo.Load: discarding corrupt snapshot for %s: %v", id, err)
		return nil, domain.ErrSessionNotFound
	}
	// File slots always come back empty after a reload.
	app.Documents = make(map[domain.DocumentSlot]*domain.DocumentRef)
	return &app, nil
}

func (r *stateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("stateRepo.Delete: %w", err)
	}
	return nil
}
