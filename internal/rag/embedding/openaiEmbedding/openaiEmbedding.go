package openaiEmbedding

import (
	"context"
	"errors"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/avelez/pdfchunks/internal/customHttpClient"
	"github.com/avelez/pdfchunks/internal/rag/embedding"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

var (
	logger          *logger_i.Logger
	once            sync.Once
	embeddingClient *client
)

type client struct {
	api      openai.Client
	model    openai.EmbeddingModel
	disabled bool
}

// GetOpenAIEmbeddingClient builds the process-wide OpenAI embedder.
// Without an API key it comes up in a disabled state instead of a
// client that fails on first use.
func GetOpenAIEmbeddingClient(modelName string, apiKey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		if apiKey == "" {
			logger.Warn("OPENAI_API_KEY not set - enrichment disabled, all embeddings will be null")
			embeddingClient = &client{disabled: true}
			return
		}
		embeddingClient = &client{
			api: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithHTTPClient(customHttpClient.Pooled()),
			),
			model: openai.EmbeddingModel(modelName),
		}
		logger.Info("OpenAI embedding client created", "model", modelName)
	})
	return embeddingClient
}

func (c *client) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if c.disabled {
		return nil, embedding.ErrDisabled
	}

	res, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: c.model,
	})
	if err != nil {
		logger.Error("Error getting embedding from OpenAI", "error", err.Error())
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, errors.New("embedding response contained no data")
	}

	vector := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		vector[i] = float32(v)
	}
	return vector, nil
}
