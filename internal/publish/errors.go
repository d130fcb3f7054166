package publish

import "fmt"

// PublishError wraps a failure while deploying a site
type PublishError struct {
	Message string
	Cause   error
}

func (e *PublishError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PublishError) Unwrap() error {
	return e.Cause
}
