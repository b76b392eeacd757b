package pdf

import "context"

// Renderer converts an invoice document into a PDF file.
type Renderer interface {
	// Render produces the raw PDF bytes for the document
	Render(ctx context.Context, doc *Document) ([]byte, error)
	// Close releases any resources held by the renderer
	Close() error
}

// RenderError represents an error during PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeInvalidHTML   = "INVALID_HTML"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
