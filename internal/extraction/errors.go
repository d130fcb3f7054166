package extraction

import "fmt"

// UnsupportedFormatError indicates the uploaded file has an extension no
// extractor handles.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only .txt, .docx, and .pdf are accepted", e.Extension)
}

// ExtractionError indicates a supported file could not be decoded.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s file: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
