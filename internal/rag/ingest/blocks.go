package ingest

import (
	"math"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
)

const (
	// Baselines within this distance count as the same line.
	lineTolerance = 2.0
	// A baseline drop beyond this many font sizes ends the paragraph.
	blockLineSpacing = 1.8
	// Horizontal gap between runs that implies a missing space.
	wordGapRatio = 0.25
)

// groupIntoBlocks folds the parser's positioned text runs into
// paragraph-ish blocks. Runs on the same baseline are joined, a small
// baseline drop continues the block, anything else (column jump, big
// vertical gap) starts a new one. The bounding box is the min/max over
// every run in the block, in the document's own coordinates.
func groupIntoBlocks(texts []pdf.Text, pageNumber int) []chunkModel.PageBlock {
	var blocks []chunkModel.PageBlock
	var b *blockBuilder

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		switch {
		case b == nil:
			b = startBlock(t)
		case b.sameLine(t):
			b.appendSameLine(t)
		case b.continuesBlock(t):
			b.appendNewLine(t)
		default:
			blocks = append(blocks, b.finish(pageNumber))
			b = startBlock(t)
		}
	}
	if b != nil {
		blocks = append(blocks, b.finish(pageNumber))
	}
	return blocks
}

type blockBuilder struct {
	text           strings.Builder
	x0, y0, x1, y1 float64
	lineY          float64
	lastEnd        float64
	fontSize       float64
}

func startBlock(t pdf.Text) *blockBuilder {
	b := &blockBuilder{
		x0:       t.X,
		y0:       t.Y,
		x1:       t.X + t.W,
		y1:       t.Y + t.FontSize,
		lineY:    t.Y,
		lastEnd:  t.X + t.W,
		fontSize: t.FontSize,
	}
	b.text.WriteString(t.S)
	return b
}

func (b *blockBuilder) sameLine(t pdf.Text) bool {
	return math.Abs(t.Y-b.lineY) < lineTolerance
}

// continuesBlock reports whether t sits on the next line of the current
// paragraph. PDF y grows upward, so a following line has a smaller y.
func (b *blockBuilder) continuesBlock(t pdf.Text) bool {
	if b.fontSize <= 0 {
		return false
	}
	drop := b.lineY - t.Y
	return drop > 0 && drop <= b.fontSize*blockLineSpacing
}

func (b *blockBuilder) appendSameLine(t pdf.Text) {
	if t.X-b.lastEnd > t.FontSize*wordGapRatio {
		b.text.WriteByte(' ')
	}
	b.text.WriteString(t.S)
	b.grow(t)
}

func (b *blockBuilder) appendNewLine(t pdf.Text) {
	b.text.WriteByte('\n')
	b.text.WriteString(t.S)
	b.lineY = t.Y
	b.grow(t)
}

func (b *blockBuilder) grow(t pdf.Text) {
	b.x0 = math.Min(b.x0, t.X)
	b.y0 = math.Min(b.y0, t.Y)
	b.x1 = math.Max(b.x1, t.X+t.W)
	b.y1 = math.Max(b.y1, t.Y+t.FontSize)
	b.lastEnd = t.X + t.W
	if t.FontSize > 0 {
		b.fontSize = t.FontSize
	}
}

func (b *blockBuilder) finish(pageNumber int) chunkModel.PageBlock {
	return chunkModel.PageBlock{
		PageNumber: pageNumber,
		Text:       b.text.String(),
		BBox:       chunkModel.BBox{X0: b.x0, Y0: b.y0, X1: b.x1, Y1: b.y1},
	}
}
