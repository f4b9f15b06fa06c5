package docx

import "fmt"

// ParseError represents a failure to read input bytes as a document
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx parse failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("docx parse failed: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// RenderError represents an invariant violation while serializing a
// segmented document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx render failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("docx render failed: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
