package letters

import "fmt"

// RenderError wraps a template rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// UnknownToneError indicates a tone name outside the supported set
type UnknownToneError struct {
	Tone string
}

func (e *UnknownToneError) Error() string {
	return fmt.Sprintf("unknown cover letter tone %q: supported tones are professional, conversational, impact", e.Tone)
}
