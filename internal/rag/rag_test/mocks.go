package rag_test

import (
	"context"

	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
)

// MockExtractor implements rag.BlockExtractor
type MockExtractor struct {
	OnExtractBlocks func(data []byte) ([]chunkModel.PageBlock, error)
}

func (m *MockExtractor) ExtractBlocks(data []byte) ([]chunkModel.PageBlock, error) {
	if m.OnExtractBlocks != nil {
		return m.OnExtractBlocks(data)
	}
	return nil, nil
}

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding func(ctx context.Context, text string) ([]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, text)
	}
	return []float32{0.1}, nil
}
