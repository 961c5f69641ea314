package embedding

import (
	"context"
	"errors"
)

// ErrDisabled is what a provider returns when it was constructed
// without a credential. The enricher treats it like any other failure
// and stores a null embedding, so a keyless deployment still serves
// chunks.
var ErrDisabled = errors.New("embedding provider disabled: no API key configured")

// Embedder turns one piece of text into a fixed-length vector.
// One attempt per call; callers decide what a failure means.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}
