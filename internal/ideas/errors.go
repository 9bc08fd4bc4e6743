package ideas

import "fmt"

// ConfigurationError signals a missing or unusable runtime setting, such as
// an absent API key.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// ExternalServiceError wraps a failed call to a collaborator (holiday lookup
// or text generation).
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// ParseError means no JSON value could be recovered from the model's text.
// Snippet carries up to the first 300 characters of the offending text.
type ParseError struct {
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model returned unparseable text: %s", e.Snippet)
}

// ValidationError signals a request with missing required fields.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

const parseSnippetLen = 300

func newParseError(text string) *ParseError {
	if len(text) > parseSnippetLen {
		text = text[:parseSnippetLen]
	}
	return &ParseError{Snippet: text}
}
