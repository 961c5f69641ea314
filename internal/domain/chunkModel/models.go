package chunkModel

const DefaultFilename = "document.pdf"

// UploadedFile is the binary payload pulled out of a multipart request.
// It only lives for the duration of one request.
type UploadedFile struct {
	Data     []byte
	Filename string
}

// BBox is a block's bounding box in the document's own coordinate space.
// Coordinates are passed through exactly as the parser reports them.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// PageBlock is one text block as emitted by the document walker,
// roughly a paragraph. PageNumber is 1-based.
type PageBlock struct {
	PageNumber int
	Text       string
	BBox       BBox
}

// Chunk is the retained output unit: normalized text plus position
// metadata and an optional embedding vector. Embedding is nil when
// enrichment failed or is disabled; that serializes as JSON null.
//
// BBoxList always holds exactly one element today - it stays a list so
// adjacent blocks can be merged later without a wire format change.
type Chunk struct {
	PageNumber  int       `json:"pageNumber"`
	TextContent string    `json:"textContent"`
	BBoxList    []BBox    `json:"bboxList"`
	Embedding   []float32 `json:"embedding"`
}
