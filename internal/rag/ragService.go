package rag

import (
	"context"
	"time"

	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/internal/metrics"
	"github.com/avelez/pdfchunks/internal/rag/enrich"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

// Service is the whole ingestion pipeline behind one method. The
// handler doesn't need to know about walkers, normalizers or
// embedding providers.
type Service interface {
	ProcessDocument(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error)
}

// BlockExtractor is the document-parsing capability: raw bytes in,
// ordered positioned text blocks out.
type BlockExtractor interface {
	ExtractBlocks(data []byte) ([]chunkModel.PageBlock, error)
}

type service struct {
	extractor BlockExtractor
	enricher  *enrich.Enricher
	logger    *logger_i.Logger
}

// NewService wires the pipeline stages together. Swapping the
// extractor or the enricher's embedder for mocks is how the tests
// exercise the flow without real PDFs or network calls.
func NewService(extractor BlockExtractor, enricher *enrich.Enricher) Service {
	return &service{
		extractor: extractor,
		enricher:  enricher,
		logger:    logger_i.NewLogger("Pipeline"),
	}
}

// ProcessDocument runs walk -> normalize -> enrich for one upload.
// A document that cannot be decoded aborts with a DecodeError; a
// document with no qualifying text succeeds with zero chunks; an
// embedding failure never aborts anything.
func (s *service) ProcessDocument(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
	inMethodLogger := s.logger.With("traceId", traceID(ctx), "filename", file.Filename)

	start := time.Now()
	status := "ok"
	defer func() { metrics.CaptureRequestMetrics(status, time.Since(start)) }()

	blocks, err := s.executeWalkStep(inMethodLogger, file)
	if err != nil {
		status = "decode_error"
		return nil, err
	}

	chunks := s.executeNormalizeStep(inMethodLogger, blocks)
	chunks = s.executeEnrichStep(ctx, inMethodLogger, chunks)

	inMethodLogger.Info("Processed document", "chunks", len(chunks))
	return chunks, nil
}
