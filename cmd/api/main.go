// @title           PDF Chunking API
// @version         1.0
// @description     Splits an uploaded PDF into positioned text chunks with embedding vectors.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelez/pdfchunks/internal/config"
	"github.com/avelez/pdfchunks/internal/handlers"
	"github.com/avelez/pdfchunks/internal/rag"
	"github.com/avelez/pdfchunks/internal/rag/embedding"
	"github.com/avelez/pdfchunks/internal/rag/embedding/googleEmbedding"
	"github.com/avelez/pdfchunks/internal/rag/embedding/openaiEmbedding"
	"github.com/avelez/pdfchunks/internal/rag/enrich"
	"github.com/avelez/pdfchunks/internal/rag/ingest"
	"github.com/avelez/pdfchunks/internal/server"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	config.Load()
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//embedding provider - a missing key disables enrichment, it never stops the server
	var embedder embedding.Embedder
	switch config.EmbeddingProvider {
	case config.ProviderGoogle:
		embedder = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)
	default:
		embedder = openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbeddingModel, config.OpenAIAPIKey)
	}

	enricher, err := enrich.NewEnricher(embedder, config.EnrichWorkerCount)
	if err != nil {
		logger.Error("Failed to start enricher. Shutting down.", "error", err)
		return
	}

	ragService := rag.NewService(ingest.NewPDFExtractor(), enricher)
	handlers.InitPipelineHandler(ragService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
		ReleasePool:      enricher.Release,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
