package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// ApplicationStateRepository persists wizard-session snapshots in a
// key-value store. Snapshots never include document blobs; implementations
// must return the state with empty document slots. A corrupt or missing
// snapshot surfaces as domain.ErrSessionNotFound, never as a decode failure.
type ApplicationStateRepository interface {
	Save(ctx context.Context, app *domain.Application) error
	Load(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
