package googleEmbedding

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"github.com/avelez/pdfchunks/internal/config"
	"github.com/avelez/pdfchunks/internal/rag/embedding"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

var (
	logger          *logger_i.Logger
	once            sync.Once
	embeddingClient *client
	dimension       = config.EmbeddingOutputDimensionality
)

type client struct {
	genAi    *genai.Client
	model    string
	disabled bool
}

// GetGoogleEmbeddingClient builds the process-wide Gemini embedder.
// Missing key or failed init leaves it disabled rather than nil, so
// callers never have to branch.
func GetGoogleEmbeddingClient(ctx context.Context, modelName string, apiKey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("google_embedding")
		if apiKey == "" {
			logger.Warn("GEMINI_API_KEY not set - enrichment disabled, all embeddings will be null")
			embeddingClient = &client{disabled: true}
			return
		}

		c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil || c == nil {
			logger.Error("Error creating Google embedding client", "error", err)
			embeddingClient = &client{disabled: true}
			return
		}
		embeddingClient = &client{genAi: c, model: modelName}
		logger.Info("Google embedding client created", "model", modelName)
	})
	return embeddingClient
}

func (c *client) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if c.disabled {
		return nil, embedding.ErrDisabled
	}

	result, err := c.genAi.Models.EmbedContent(ctx, c.model, genai.Text(text),
		&genai.EmbedContentConfig{OutputDimensionality: &dimension, TaskType: "RETRIEVAL_DOCUMENT"})
	if err != nil {
		logger.Error("Error getting embedding from Google", "error", err.Error())
		return nil, err
	}
	if len(result.Embeddings) == 0 {
		return nil, errors.New("embedding response contained no data")
	}
	return result.Embeddings[0].Values, nil
}
