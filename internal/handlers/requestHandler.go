package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/avelez/pdfchunks/internal/adapter"
	"github.com/avelez/pdfchunks/internal/rag"
	"github.com/avelez/pdfchunks/internal/rag/ingest"
	"github.com/avelez/pdfchunks/internal/rag/multipartDecoder"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

var (
	handlerInstance *PipelineHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
)

type PipelineHandler struct {
	service rag.Service
}

func InitPipelineHandler(ragService rag.Service) {
	once.Do(func() {
		handlerInstance = &PipelineHandler{service: ragService}
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting pipeline handler")
	})
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ProcessPDFHandler godoc
// @Summary      Process a PDF into embedded chunks
// @Description  Receives one PDF via multipart/form-data, splits it into positioned text chunks and attaches an embedding vector per chunk (null when the embedding call fails). The field name is irrelevant - the file part is detected by its PDF content type or filename.
// @Tags         Processing
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "The PDF file to process"
// @Success      200  {object}  api.ProcessResponse  "Chunks in document reading order; may be empty"
// @Failure      400  {object}  api.ErrorResponse    "Not multipart, empty body or no file part"
// @Failure      500  {object}  api.ErrorResponse    "Document could not be decoded"
// @Router       /api/process-pdf [post]
func ProcessPDFHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}

	boundary, errMessage := multipartBoundary(r)
	if errMessage != "" {
		WriteErrorResponse(w, http.StatusBadRequest, errMessage)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or unreadable body")
		return
	}
	if len(body) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, "Empty request body")
		return
	}

	file, err := multipartDecoder.Extract(body, boundary)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	logRH.Info("Processing uploaded document", "filename", file.Filename, "size", len(file.Data))

	chunks, err := handlerInstance.service.ProcessDocument(r.Context(), file)
	if err != nil {
		var decodeErr *ingest.DecodeError
		if errors.As(err, &decodeErr) {
			logRH.Error("Document decode failed", "filename", file.Filename, "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "Error processing file")
			return
		}
		logRH.Error("Unexpected pipeline failure", "filename", file.Filename, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToProcessResponse(file.Filename, chunks))
}
