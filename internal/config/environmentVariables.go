package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	IS_PROD                     = false
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 60 * time.Second //embedding calls can keep a request open for a while
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//upload limits
	MaxUploadSize = 32 << 20 //32mb

	//pdf walking
	PageExtractTimeout = 10 * time.Second

	//chunking - normalized text must be strictly longer than this to survive
	MinChunkTextLength = 20

	//embeddings
	EmbeddingOutputDimensionality int32 = 1536
	OpenAIEmbeddingModel                = "text-embedding-3-small"
	GoogleEmbeddingModel                = "gemini-embedding-001"
	EmbeddingCallTimeout                = 30 * time.Second
	EnrichWorkerCount                   = 4

	ProviderOpenAI = "openai"
	ProviderGoogle = "google"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
)

// Credentials and provider choice come from the environment. A missing
// key is a startup condition, not a per-request error - the embedder
// boots into a disabled state and every chunk gets a null embedding.
var (
	OpenAIAPIKey      string
	GoogleAPIKey      string
	EmbeddingProvider string
)

func Load() {
	//.env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	GoogleAPIKey = os.Getenv("GEMINI_API_KEY")
	EmbeddingProvider = os.Getenv("EMBEDDING_PROVIDER")
	if EmbeddingProvider == "" {
		EmbeddingProvider = ProviderOpenAI
	}
}
