package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/avelez/pdfchunks/internal/config"
	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
)

// NormalizeBlock collapses every whitespace run (newlines included) to
// a single space, trims the ends, and keeps the block only when the
// result is strictly longer than the configured minimum. Discarded
// blocks are silent - headers, page numbers and stray fragments are
// expected noise, not errors.
//
// Pure and deterministic; normalizing twice gives the same text.
func NormalizeBlock(block chunkModel.PageBlock) (chunkModel.Chunk, bool) {
	clean := strings.Join(strings.Fields(block.Text), " ")
	if utf8.RuneCountInString(clean) <= config.MinChunkTextLength {
		return chunkModel.Chunk{}, false
	}

	return chunkModel.Chunk{
		PageNumber:  block.PageNumber,
		TextContent: clean,
		//a single box per chunk for now, kept as a list so adjacent
		//blocks can be merged later without changing the wire shape
		BBoxList: []chunkModel.BBox{block.BBox},
	}, true
}
