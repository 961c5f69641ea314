package handlers

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/avelez/pdfchunks/internal/adapter"
	"github.com/avelez/pdfchunks/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.ToErrorResponse(message, httpCode))
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

// multipartBoundary validates the content type and pulls out the
// boundary token. A non-multipart or boundary-less request is rejected
// before any decoding happens.
func multipartBoundary(r *http.Request) (boundary string, errMessage string) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return "", "Expected multipart/form-data"
	}
	if params["boundary"] == "" {
		return "", "Missing multipart boundary"
	}
	return params["boundary"], ""
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the request body reader", "error", err)
		}
	}(r.Body)

	return io.ReadAll(http.MaxBytesReader(w, r.Body, config.MaxUploadSize))
}
