package enrich

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/avelez/pdfchunks/internal/config"
	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/internal/metrics"
	"github.com/avelez/pdfchunks/internal/rag/embedding"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

// Enricher attaches an embedding vector to each chunk, best effort.
// Calls run on a bounded worker pool shared across requests; one
// chunk failing only nulls that chunk's embedding.
type Enricher struct {
	embedder embedding.Embedder
	pool     *ants.Pool
	timeout  time.Duration
	logger   *logger_i.Logger
}

func NewEnricher(embedder embedding.Embedder, poolSize int) (*Enricher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	return &Enricher{
		embedder: embedder,
		pool:     pool,
		timeout:  config.EmbeddingCallTimeout,
		logger:   logger_i.NewLogger("Enricher"),
	}, nil
}

// EnrichChunks populates the embedding field of every chunk in place
// and returns the slice in its original order, whatever order the
// calls complete in. A failed call leaves that chunk's embedding nil.
func (e *Enricher) EnrichChunks(ctx context.Context, chunks []chunkModel.Chunk) []chunkModel.Chunk {
	if len(chunks) == 0 {
		return chunks
	}

	var wg sync.WaitGroup
	for i := range chunks {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			chunks[i].Embedding = e.embedOne(ctx, chunks[i].TextContent)
		}
		if err := e.pool.Submit(task); err != nil {
			//pool released mid-shutdown; finish the request inline
			task()
		}
	}
	wg.Wait()
	return chunks
}

func (e *Enricher) embedOne(ctx context.Context, text string) []float32 {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	vector, err := e.embedder.GetEmbedding(callCtx, text)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))

	if err != nil {
		metrics.IncrementEmbeddingFailures()
		if !errors.Is(err, embedding.ErrDisabled) {
			e.logger.Error("Embedding call failed, storing null embedding", "error", err)
		}
		return nil
	}
	return vector
}

// Release tears down the worker pool. In-flight requests fall back to
// inline calls, so this is safe to run during shutdown.
func (e *Enricher) Release() {
	e.pool.Release()
}
