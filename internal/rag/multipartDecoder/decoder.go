package multipartDecoder

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

// ErrNoFilePart means the body held no part that looks like an uploaded
// document. The caller maps this to a client error.
var ErrNoFilePart = errors.New("no file part found in multipart body")

var logger = logger_i.NewLogger("MultipartDecoder")

// Extract walks the multipart body and returns the first part that
// carries a PDF content type or a filename parameter. Field names are
// ignored on purpose - detection is content based, so it doesn't matter
// whether the client called the field "file", "document" or anything
// else. Only the first match is used; additional file fields are not
// supported.
//
// Malformed parts are skipped, never raised. Decoding is done by the
// stdlib multipart state machine, so a boundary-like byte run inside
// the binary payload cannot split a part.
func Extract(body []byte, boundary string) (chunkModel.UploadedFile, error) {
	if len(body) == 0 {
		return chunkModel.UploadedFile{}, ErrNoFilePart
	}

	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return chunkModel.UploadedFile{}, ErrNoFilePart
		}
		if err != nil {
			//the remainder of the body is unreadable, stop here
			logger.Warn("Malformed multipart body", "error", err)
			return chunkModel.UploadedFile{}, ErrNoFilePart
		}

		if !isFilePart(part) {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			logger.Warn("Could not read file part", "error", err)
			return chunkModel.UploadedFile{}, ErrNoFilePart
		}

		filename := part.FileName()
		if filename == "" {
			filename = chunkModel.DefaultFilename
		}
		return chunkModel.UploadedFile{Data: data, Filename: filename}, nil
	}
}

func isFilePart(part *multipart.Part) bool {
	if part.FileName() != "" {
		return true
	}
	contentType := part.Header.Get("Content-Type")
	return strings.EqualFold(contentType, "application/pdf")
}
