package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/avelez/pdfchunks/internal/api"
	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/internal/handlers"
	"github.com/avelez/pdfchunks/internal/rag/ingest"
)

// mockService is swapped per test; the handler singleton only gets
// initialized once per process.
type mockService struct {
	onProcessDocument func(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error)
}

func (m *mockService) ProcessDocument(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
	if m.onProcessDocument != nil {
		return m.onProcessDocument(ctx, file)
	}
	return []chunkModel.Chunk{}, nil
}

var service = &mockService{}

func TestMain(m *testing.M) {
	handlers.InitPipelineHandler(service)
	os.Exit(m.Run())
}

func pdfUploadRequest(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="report.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("part write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("writer close failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/process-pdf", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("error response is not valid JSON: %v", err)
	}
	return resp
}

func TestProcessPDFHandler_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		name            string
		request         func(t *testing.T) *http.Request
		expectedMessage string
	}{
		{
			name: "Not_Multipart",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/process-pdf", bytes.NewBufferString("plain text"))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			expectedMessage: "Expected multipart/form-data",
		},
		{
			name: "Missing_Boundary",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/process-pdf", bytes.NewBufferString("whatever"))
				req.Header.Set("Content-Type", "multipart/form-data")
				return req
			},
			expectedMessage: "Missing multipart boundary",
		},
		{
			name: "Empty_Body",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/process-pdf", bytes.NewBuffer(nil))
				req.Header.Set("Content-Type", "multipart/form-data; boundary=abc123")
				return req
			},
			expectedMessage: "Empty request body",
		},
		{
			name: "No_File_Part",
			request: func(t *testing.T) *http.Request {
				var buf bytes.Buffer
				w := multipart.NewWriter(&buf)
				if err := w.WriteField("note", "no file in here"); err != nil {
					t.Fatalf("WriteField failed: %v", err)
				}
				if err := w.Close(); err != nil {
					t.Fatalf("writer close failed: %v", err)
				}
				req := httptest.NewRequest(http.MethodPost, "/api/process-pdf", &buf)
				req.Header.Set("Content-Type", w.FormDataContentType())
				return req
			},
			expectedMessage: "No file uploaded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.onProcessDocument = func(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
				t.Error("service must not be reached by an invalid request")
				return nil, nil
			}

			rec := httptest.NewRecorder()
			handlers.ProcessPDFHandler(rec, tt.request(t))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status got %d, want %d", rec.Code, http.StatusBadRequest)
			}
			resp := decodeError(t, rec)
			if resp.Status != "Error" {
				t.Errorf("status field got %q, want %q", resp.Status, "Error")
			}
			if resp.Error == nil || resp.Error.Message != tt.expectedMessage {
				t.Errorf("error got %+v, want message %q", resp.Error, tt.expectedMessage)
			}
		})
	}
}

func TestProcessPDFHandler_DecodeErrorIsServerError(t *testing.T) {
	service.onProcessDocument = func(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
		return nil, &ingest.DecodeError{Err: errors.New("bad xref table")}
	}

	rec := httptest.NewRecorder()
	handlers.ProcessPDFHandler(rec, pdfUploadRequest(t, []byte("not really a pdf")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	resp := decodeError(t, rec)
	if resp.Error == nil || resp.Error.Message != "Error processing file" {
		t.Errorf("error got %+v, want message %q", resp.Error, "Error processing file")
	}
}

func TestProcessPDFHandler_UnexpectedErrorIsServerError(t *testing.T) {
	service.onProcessDocument = func(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
		return nil, errors.New("something else broke")
	}

	rec := httptest.NewRecorder()
	handlers.ProcessPDFHandler(rec, pdfUploadRequest(t, []byte("%PDF")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	resp := decodeError(t, rec)
	if resp.Error == nil || resp.Error.Message != "Internal Server Error" {
		t.Errorf("error got %+v, want message %q", resp.Error, "Internal Server Error")
	}
}

func TestProcessPDFHandler_Success(t *testing.T) {
	payload := []byte("%PDF-1.7 content")
	service.onProcessDocument = func(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
		if !bytes.Equal(file.Data, payload) {
			t.Errorf("service received %d bytes, want %d", len(file.Data), len(payload))
		}
		return []chunkModel.Chunk{
			{
				PageNumber:  1,
				TextContent: "Quarterly revenue grew twelve percent",
				BBoxList:    []chunkModel.BBox{{X0: 10, Y0: 20, X1: 110, Y1: 40}},
				Embedding:   []float32{0.1, 0.2},
			},
			{
				PageNumber:  2,
				TextContent: "A chunk whose embedding call failed",
				BBoxList:    []chunkModel.BBox{{X0: 5, Y0: 5, X1: 50, Y1: 15}},
				Embedding:   nil,
			},
		}, nil
	}

	rec := httptest.NewRecorder()
	handlers.ProcessPDFHandler(rec, pdfUploadRequest(t, payload))

	if rec.Code != http.StatusOK {
		t.Fatalf("status got %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type got %q", ct)
	}

	var resp api.ProcessResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Filename != "report.pdf" {
		t.Errorf("filename got %q, want %q", resp.Filename, "report.pdf")
	}
	if len(resp.Chunks) != 2 {
		t.Fatalf("chunk count got %d, want 2", len(resp.Chunks))
	}
	if resp.Chunks[0].PageNumber != 1 || resp.Chunks[1].PageNumber != 2 {
		t.Errorf("page numbers got %d, %d", resp.Chunks[0].PageNumber, resp.Chunks[1].PageNumber)
	}
	if resp.Chunks[1].Embedding != nil {
		t.Errorf("failed embedding should round-trip as null, got %v", resp.Chunks[1].Embedding)
	}
	if len(resp.Chunks[0].BBoxList) != 1 || resp.Chunks[0].BBoxList[0].X1 != 110 {
		t.Errorf("bbox list got %+v", resp.Chunks[0].BBoxList)
	}
}

func TestProcessPDFHandler_EmptyChunksSerializeAsArray(t *testing.T) {
	service.onProcessDocument = func(ctx context.Context, file chunkModel.UploadedFile) ([]chunkModel.Chunk, error) {
		return []chunkModel.Chunk{}, nil
	}

	rec := httptest.NewRecorder()
	handlers.ProcessPDFHandler(rec, pdfUploadRequest(t, []byte("%PDF scanned, no text")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status got %d, want %d", rec.Code, http.StatusOK)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if string(raw["chunks"]) != "[]" {
		t.Errorf(`chunks got %s, want []`, raw["chunks"])
	}
}
