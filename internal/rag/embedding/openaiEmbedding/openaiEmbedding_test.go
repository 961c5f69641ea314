package openaiEmbedding

import (
	"context"
	"errors"
	"testing"

	"github.com/avelez/pdfchunks/internal/rag/embedding"
)

func TestGetOpenAIEmbeddingClient_DisabledWithoutKey(t *testing.T) {
	embedder := GetOpenAIEmbeddingClient("text-embedding-3-small", "")
	if embedder == nil {
		t.Fatal("client must never be nil")
	}

	vector, err := embedder.GetEmbedding(context.Background(), "some chunk text")
	if !errors.Is(err, embedding.ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
	if vector != nil {
		t.Errorf("disabled client must return a nil vector, got %v", vector)
	}
}

func TestGetOpenAIEmbeddingClient_Singleton(t *testing.T) {
	first := GetOpenAIEmbeddingClient("text-embedding-3-small", "")
	second := GetOpenAIEmbeddingClient("text-embedding-3-small", "sk-ignored-after-first-call")
	if first != second {
		t.Error("expected the same instance on every call")
	}
}
