package ingest

// DecodeError wraps any failure to open or read the uploaded bytes as a
// PDF. The handler maps it to a server error, everything else in the
// walk is skipped page by page.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "document decode failed: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
