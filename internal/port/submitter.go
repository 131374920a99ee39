package port

import (
	"context"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/submit"
)

// Submitter delivers an assembled payload to the financing partner. One
// attempt per call; retrying is the caller's (user's) decision.
type Submitter interface {
	Submit(ctx context.Context, payload *submit.Payload) error
}
