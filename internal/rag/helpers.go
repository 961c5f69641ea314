package rag

import (
	"context"
	"time"

	"github.com/avelez/pdfchunks/internal/config"
	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/internal/metrics"
	"github.com/avelez/pdfchunks/internal/rag/ingest"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

func traceID(ctx context.Context) string {
	if v, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return v
	}
	return ""
}

func (s *service) executeWalkStep(log *logger_i.Logger, file chunkModel.UploadedFile) ([]chunkModel.PageBlock, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("pdf_walk", time.Since(start)) }()

	blocks, err := s.extractor.ExtractBlocks(file.Data)
	if err != nil {
		return nil, err
	}
	log.Debug("Walked document", "blocks", len(blocks))
	return blocks, nil
}

// Never returns nil: an upload whose every block falls under the
// length threshold is a valid empty result, and the response must
// serialize its chunk list as [].
func (s *service) executeNormalizeStep(log *logger_i.Logger, blocks []chunkModel.PageBlock) []chunkModel.Chunk {
	chunks := make([]chunkModel.Chunk, 0, len(blocks))
	discarded := 0

	for _, block := range blocks {
		chunk, keep := ingest.NormalizeBlock(block)
		if !keep {
			discarded++
			continue
		}
		chunks = append(chunks, chunk)
	}

	metrics.AddChunksExtracted(len(chunks))
	metrics.AddBlocksDiscarded(discarded)
	log.Debug("Normalized blocks", "kept", len(chunks), "discarded", discarded)
	return chunks
}

func (s *service) executeEnrichStep(ctx context.Context, log *logger_i.Logger, chunks []chunkModel.Chunk) []chunkModel.Chunk {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("enrichment", time.Since(start)) }()

	chunks = s.enricher.EnrichChunks(ctx, chunks)

	enriched := 0
	for _, c := range chunks {
		if c.Embedding != nil {
			enriched++
		}
	}
	log.Debug("Enriched chunks", "total", len(chunks), "with_embedding", enriched)
	return chunks
}
