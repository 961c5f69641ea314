package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"

	"github.com/avelez/pdfchunks/internal/config"
	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/pkg/logger_i"
)

// PDFExtractor walks an in-memory PDF and emits text blocks in page
// order. Block order within a page follows the parser's content-stream
// order - we do not re-sort into visual reading order.
type PDFExtractor struct {
	pageTimeout time.Duration
	logger      *logger_i.Logger
}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		pageTimeout: config.PageExtractTimeout,
		logger:      logger_i.NewLogger("PDFWalker"),
	}
}

// ExtractBlocks opens the document and returns every text block with
// its 1-based page number and bounding box. Unparseable bytes yield a
// DecodeError; a single bad page is logged and skipped so the rest of
// the document still goes through.
func (e *PDFExtractor) ExtractBlocks(data []byte) ([]chunkModel.PageBlock, error) {
	reader, err := openDocument(data)
	if err != nil {
		e.logger.Error("Failed to open document", "size", len(data), "error", err)
		return nil, &DecodeError{Err: err}
	}

	var blocks []chunkModel.PageBlock
	numPages := reader.NumPage()
	e.logger.Debug("Walking document", "pages", numPages)

	for pageIndex := 1; pageIndex <= numPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			e.logger.Debug("Null page encountered", "page", pageIndex)
			continue
		}

		texts, err := e.protectContent(page)
		if err != nil {
			e.logger.Error("Skipping unreadable page", "page", pageIndex, "error", err)
			continue
		}
		blocks = append(blocks, groupIntoBlocks(texts, pageIndex)...)
	}
	return blocks, nil
}

// The pdf package panics on some malformed inputs instead of returning
// an error, so opening is wrapped in a recover.
func openDocument(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupt document: %v", r)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// protectContent reads a page's positioned text in a goroutine so a
// hung or panicking parse cannot take the whole request down with it.
func (e *PDFExtractor) protectContent(page pdf.Page) ([]pdf.Text, error) {
	type result struct {
		texts []pdf.Text
		err   error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{nil, fmt.Errorf("page content panic: %v", r)}
			}
		}()
		resChan <- result{page.Content().Text, nil}
	}()

	select {
	case r := <-resChan:
		return r.texts, r.err
	case <-time.After(e.pageTimeout):
		return nil, errors.New("page extraction timeout")
	}
}
