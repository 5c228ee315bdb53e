package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a WSDL schema parse failure.
type ErrorCode string

const (
	// ErrUnsupportedElement indicates an unrecognized or wrongly-namespaced schema child.
	ErrUnsupportedElement ErrorCode = "wsdl-unsupported-element"
	// ErrExternalImport indicates an import carrying a schemaLocation.
	ErrExternalImport ErrorCode = "wsdl-external-import"
	// ErrMissingEndTag indicates input ended before an element was closed.
	ErrMissingEndTag ErrorCode = "wsdl-missing-end-tag"
	// ErrMissingTargetNamespace indicates a schema block without targetNamespace.
	ErrMissingTargetNamespace ErrorCode = "wsdl-missing-target-namespace"
	// ErrInvalidAttribute indicates an attribute value that cannot be interpreted.
	ErrInvalidAttribute ErrorCode = "wsdl-invalid-attribute"
	// ErrUnexpectedRoot indicates a document root that is neither definitions nor schema.
	ErrUnexpectedRoot ErrorCode = "wsdl-unexpected-root"
	// ErrXMLSyntax indicates the document is not well-formed XML.
	ErrXMLSyntax ErrorCode = "xml-syntax"
)

// ParseError describes a structural failure while reading a WSDL document.
//
//nolint:errname // public API name uses parser domain term.
type ParseError struct {
	Err      error
	Code     string
	Message  string
	Position string
}

// Error formats the failure with code, message and position.
func (e *ParseError) Error() string {
	if e == nil {
		return "parse error <nil>"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Position != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Position))
	}
	if e.Err != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return b.String()
}

// Unwrap returns the wrapped error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError with a code, message and optional position.
func NewParseError(code ErrorCode, msg, position string) *ParseError {
	return &ParseError{Code: string(code), Message: msg, Position: position}
}

// NewParseErrorf formats a message and builds a ParseError.
func NewParseErrorf(code ErrorCode, position, format string, args ...any) *ParseError {
	return NewParseError(code, fmt.Sprintf(format, args...), position)
}

// WrapParseError builds a ParseError around a lower-level cause.
func WrapParseError(code ErrorCode, msg, position string, err error) *ParseError {
	return &ParseError{Code: string(code), Message: msg, Position: position, Err: err}
}

// AsParseError extracts the first ParseError from an error chain.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}

// HasCode reports whether err carries a ParseError with the given code.
func HasCode(err error, code ErrorCode) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Code == string(code)
}
