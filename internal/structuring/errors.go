package structuring

// EmptyDocumentError indicates the uploaded document contained no text at all.
// The caller must re-prompt for a different file; there is nothing to parse.
type EmptyDocumentError struct{}

func (e *EmptyDocumentError) Error() string {
	return "document is empty"
}

// UnreadableDocumentError indicates text was present but no non-empty lines
// survived trimming (e.g. whitespace or control-character noise from a bad
// extraction).
type UnreadableDocumentError struct {
	Reason string
}

func (e *UnreadableDocumentError) Error() string {
	if e.Reason != "" {
		return "document is unreadable: " + e.Reason
	}
	return "document is unreadable: no usable lines found"
}
