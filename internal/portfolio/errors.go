package portfolio

import "fmt"

// UnknownThemeError indicates a theme name outside the supported set
type UnknownThemeError struct {
	Theme string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown portfolio theme %q: supported themes are minimal, modern, classic", e.Theme)
}

// BuildError wraps a site generation failure
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
