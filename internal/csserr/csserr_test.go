package csserr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{NewInvalidSyntax("unexpected token"), "invalid syntax: unexpected token"},
		{NewUnsupportedValue("format is not supported"), "unsupported value: format is not supported"},
		{&Error{Kind: InvalidSyntax}, "invalid syntax"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error()=%q want %q", got, tc.want)
		}
	}
}

func TestErrorsIsMatchesKindOnly(t *testing.T) {
	err := fmt.Errorf("color %q: %w", "x", NewInvalidSyntax("bad"))
	if !errors.Is(err, ErrInvalidSyntax) {
		t.Fatal("wrapped invalid syntax should match ErrInvalidSyntax")
	}
	if errors.Is(err, ErrUnsupportedValue) {
		t.Fatal("invalid syntax must not match ErrUnsupportedValue")
	}
	if errors.Is(err, errors.New("invalid syntax: bad")) {
		t.Fatal("plain errors must not match")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(fmt.Errorf("wrap: %w", NewUnsupportedValue("x"))); got != UnsupportedValue {
		t.Fatalf("KindOf=%v want %v", got, UnsupportedValue)
	}
	if got := KindOf(errors.New("other")); got != 0 {
		t.Fatalf("KindOf(other)=%v want 0", got)
	}
	if got := KindOf(nil); got != 0 {
		t.Fatalf("KindOf(nil)=%v want 0", got)
	}
}

func TestKindString(t *testing.T) {
	if InvalidSyntax.String() != "invalid_syntax" || UnsupportedValue.String() != "unsupported_value" {
		t.Fatalf("unexpected kind names: %s %s", InvalidSyntax, UnsupportedValue)
	}
	if Kind(0).String() != "unknown" {
		t.Fatalf("zero kind should be unknown, got %s", Kind(0))
	}
}
