package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/avelez/pdfchunks/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

// Pooled returns the shared outbound client. The embedding provider
// reuses its connections across requests to avoid handshake latency.
func Pooled() *http.Client {
	once.Do(func() {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        config.MaxIdleConns,
				MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
				IdleConnTimeout:     config.IdleConnTimeout,
			},
		}
	})
	return client
}
