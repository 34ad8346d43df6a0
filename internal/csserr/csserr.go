// Package csserr defines the error vocabulary shared by the CSS number and
// color parsers.
package csserr

import "errors"

// Kind classifies a parse failure. The set is closed: callers may switch on
// it exhaustively.
type Kind int

const (
	// InvalidSyntax means the text does not follow the CSS grammar.
	InvalidSyntax Kind = iota + 1
	// UnsupportedValue means the text is valid CSS but denotes something
	// that cannot be resolved to an absolute sRGB color here.
	UnsupportedValue
)

func (k Kind) String() string {
	switch k {
	case InvalidSyntax:
		return "invalid_syntax"
	case UnsupportedValue:
		return "unsupported_value"
	default:
		return "unknown"
	}
}

// Error is an immutable parse failure with a human readable reason.
type Error struct {
	Kind   Kind
	Reason string
}

var (
	ErrInvalidSyntax    = &Error{Kind: InvalidSyntax}
	ErrUnsupportedValue = &Error{Kind: UnsupportedValue}
)

func NewInvalidSyntax(reason string) *Error {
	return &Error{Kind: InvalidSyntax, Reason: reason}
}

func NewUnsupportedValue(reason string) *Error {
	return &Error{Kind: UnsupportedValue, Reason: reason}
}

func (e *Error) Error() string {
	prefix := "invalid syntax"
	if e.Kind == UnsupportedValue {
		prefix = "unsupported value"
	}
	if e.Reason == "" {
		return prefix
	}
	return prefix + ": " + e.Reason
}

// Is reports whether target is a parse error of the same kind, so that
// errors.Is(err, ErrInvalidSyntax) works regardless of the reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first parse error in err's chain, or 0 when
// err does not carry one.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
