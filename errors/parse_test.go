package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err  *ParseError
		name string
		want string
	}{
		{
			name: "message only",
			err:  NewParseError(ErrMissingTargetNamespace, "schema:targetNamespace can not be null", ""),
			want: "[wsdl-missing-target-namespace] schema:targetNamespace can not be null",
		},
		{
			name: "with position",
			err:  NewParseErrorf(ErrUnsupportedElement, "line 3, column 5", "unsupported schema element %s:%s", "urn:x", "foo"),
			want: "[wsdl-unsupported-element] unsupported schema element urn:x:foo at line 3, column 5",
		},
		{
			name: "with cause",
			err:  WrapParseError(ErrXMLSyntax, "malformed document", "line 1, column 1", cause),
			want: "[xml-syntax] malformed document at line 1, column 1: boom",
		},
		{
			name: "nil",
			err:  nil,
			want: "parse error <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsParseErrorThroughWrapping(t *testing.T) {
	base := NewParseError(ErrExternalImport, "external import", "")
	wrapped := fmt.Errorf("read schema: %w", base)

	got, ok := AsParseError(wrapped)
	if !ok || got != base {
		t.Fatalf("AsParseError() = %v, %v, want base error", got, ok)
	}
	if !HasCode(wrapped, ErrExternalImport) {
		t.Fatalf("HasCode(%s) = false, want true", ErrExternalImport)
	}
	if HasCode(wrapped, ErrMissingEndTag) {
		t.Fatalf("HasCode(%s) = true, want false", ErrMissingEndTag)
	}
	if _, ok := AsParseError(errors.New("plain")); ok {
		t.Fatalf("AsParseError(plain) ok = true, want false")
	}
	if _, ok := AsParseError(nil); ok {
		t.Fatalf("AsParseError(nil) ok = true, want false")
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := WrapParseError(ErrXMLSyntax, "bad", "", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}
}
