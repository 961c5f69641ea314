package adapter

import (
	"github.com/avelez/pdfchunks/internal/api"
	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
)

func ToProcessResponse(filename string, chunks []chunkModel.Chunk) api.ProcessResponse {
	out := make([]api.ChunkPayload, 0, len(chunks))
	for _, c := range chunks {
		boxes := make([]api.BoundingBox, 0, len(c.BBoxList))
		for _, b := range c.BBoxList {
			boxes = append(boxes, api.BoundingBox{X0: b.X0, Y0: b.Y0, X1: b.X1, Y1: b.Y1})
		}
		out = append(out, api.ChunkPayload{
			PageNumber:  c.PageNumber,
			TextContent: c.TextContent,
			BBoxList:    boxes,
			Embedding:   c.Embedding,
		})
	}

	return api.ProcessResponse{
		Filename: filename,
		Chunks:   out,
	}
}

func ToErrorResponse(message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Status: "Error",
		Error: &api.APIError{
			Code:    code,
			Message: message,
		},
	}
}
