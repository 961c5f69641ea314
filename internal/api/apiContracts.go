package api

// BoundingBox is a block's position in the source document, exactly as
// the parser reported it - no unit conversion on the way out.
type BoundingBox struct {
	X0 float64 `json:"x0" example:"10.0"`
	Y0 float64 `json:"y0" example:"20.0"`
	X1 float64 `json:"x1" example:"110.0"`
	Y1 float64 `json:"y1" example:"40.0"`
}

// ChunkPayload is one retained text unit. Embedding is null when
// enrichment failed or is disabled for that chunk.
type ChunkPayload struct {
	PageNumber  int           `json:"pageNumber" example:"1"`
	TextContent string        `json:"textContent" example:"Quarterly revenue grew twelve percent year over year."`
	BBoxList    []BoundingBox `json:"bboxList"`
	Embedding   []float32     `json:"embedding"`
}

// ProcessResponse is the whole result for one upload, emitted once,
// in document reading order. Chunks may be empty, never null.
type ProcessResponse struct {
	Filename string         `json:"filename" example:"report.pdf"`
	Chunks   []ChunkPayload `json:"chunks"`
}

type APIError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"No file uploaded"`
}

type ErrorResponse struct {
	Status string    `json:"status" example:"Error"`
	Error  *APIError `json:"error,omitempty"`
}
