package multipartDecoder_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelez/pdfchunks/internal/domain/chunkModel"
	"github.com/avelez/pdfchunks/internal/rag/multipartDecoder"
)

func buildBody(t *testing.T, write func(w *multipart.Writer)) (body []byte, boundary string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	write(w)
	require.NoError(t, w.Close())
	return buf.Bytes(), w.Boundary()
}

func writePDFPart(t *testing.T, w *multipart.Writer, fieldName string, data []byte) {
	t.Helper()
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"`)
	header.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
}

func TestExtract_SelectsByContentType(t *testing.T) {
	payload := []byte("%PDF-1.7 fake content")
	body, boundary := buildBody(t, func(w *multipart.Writer) {
		writePDFPart(t, w, "upload", payload)
	})

	file, err := multipartDecoder.Extract(body, boundary)

	require.NoError(t, err)
	assert.Equal(t, payload, file.Data)
	//no filename parameter on the part, so the default applies
	assert.Equal(t, chunkModel.DefaultFilename, file.Filename)
}

func TestExtract_SelectsByFilename(t *testing.T) {
	payload := []byte("%PDF-1.4 other content")
	body, boundary := buildBody(t, func(w *multipart.Writer) {
		part, err := w.CreateFormFile("whatever", "report.pdf")
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	})

	file, err := multipartDecoder.Extract(body, boundary)

	require.NoError(t, err)
	assert.Equal(t, "report.pdf", file.Filename)
	assert.Equal(t, payload, file.Data)
}

func TestExtract_ContentTypeIsCaseInsensitive(t *testing.T) {
	body, boundary := buildBody(t, func(w *multipart.Writer) {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="doc"`)
		header.Set("Content-Type", "Application/PDF")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("data"))
		require.NoError(t, err)
	})

	_, err := multipartDecoder.Extract(body, boundary)
	assert.NoError(t, err)
}

func TestExtract_SkipsPlainFields(t *testing.T) {
	payload := []byte("the actual document")
	body, boundary := buildBody(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("note", "just a text field"))
		require.NoError(t, w.WriteField("other", "also not a file"))
		writePDFPart(t, w, "document", payload)
	})

	file, err := multipartDecoder.Extract(body, boundary)

	require.NoError(t, err)
	assert.Equal(t, payload, file.Data)
}

func TestExtract_FirstMatchWins(t *testing.T) {
	body, boundary := buildBody(t, func(w *multipart.Writer) {
		writePDFPart(t, w, "first", []byte("first document"))
		writePDFPart(t, w, "second", []byte("second document"))
	})

	file, err := multipartDecoder.Extract(body, boundary)

	require.NoError(t, err)
	assert.Equal(t, []byte("first document"), file.Data)
}

func TestExtract_BinaryPayloadSurvivesBoundaryLikeBytes(t *testing.T) {
	//a naive split on "--" would tear this payload apart
	payload := []byte("binary\r\n--not-a-boundary--\r\nmore\x00\x01\x02bytes")
	body, boundary := buildBody(t, func(w *multipart.Writer) {
		writePDFPart(t, w, "file", payload)
	})

	file, err := multipartDecoder.Extract(body, boundary)

	require.NoError(t, err)
	assert.Equal(t, payload, file.Data)
}

func TestExtract_NoFilePart(t *testing.T) {
	tests := []struct {
		name     string
		body     func(t *testing.T) ([]byte, string)
	}{
		{
			name: "Only_Text_Fields",
			body: func(t *testing.T) ([]byte, string) {
				return buildBody(t, func(w *multipart.Writer) {
					require.NoError(t, w.WriteField("note", "no file here"))
				})
			},
		},
		{
			name: "Empty_Body",
			body: func(t *testing.T) ([]byte, string) {
				return nil, "some-boundary"
			},
		},
		{
			name: "Garbage_Body",
			body: func(t *testing.T) ([]byte, string) {
				return []byte("this is not multipart at all"), "some-boundary"
			},
		},
		{
			name: "Truncated_Body",
			body: func(t *testing.T) ([]byte, string) {
				full, boundary := buildBody(t, func(w *multipart.Writer) {
					writePDFPart(t, w, "file", []byte("cut off below"))
				})
				return full[:len(full)-15], boundary
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, boundary := tt.body(t)
			_, err := multipartDecoder.Extract(body, boundary)
			assert.ErrorIs(t, err, multipartDecoder.ErrNoFilePart)
		})
	}
}
