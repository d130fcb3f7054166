package render

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewChromeRenderer_Defaults(t *testing.T) {
	renderer := NewChromeRenderer()

	assert.Equal(t, 30*time.Second, renderer.Timeout)
	assert.False(t, renderer.Verbose)
}

func TestRenderError_Unwrap(t *testing.T) {
	cause := errors.New("chrome not found")
	err := &RenderError{Message: "browser pdf rendering failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "chrome not found")
}
