package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrEmptyEnumeration, "enumeration contains no items")
	want := "EMPTY_ENUMERATION: enumeration contains no items"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := stderrors.New("strconv failure")
	wrapped := Wrap(ErrMalformedFoldArgument, "bad bound", cause)
	if wrapped.Error() != "MALFORMED_FOLD_ARGUMENT: bad bound (caused by: strconv failure)" {
		t.Errorf("unexpected wrapped message: %q", wrapped.Error())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("Unwrap does not expose the cause")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewEmptyArgumentList("nothing to unfold")

	if !IsErrorType(err, ErrEmptyArgumentList) {
		t.Error("expected EMPTY_ARGUMENT_LIST match")
	}
	if IsErrorType(err, ErrMalformedFoldArgument) {
		t.Error("unexpected type match")
	}
	if IsErrorType(stderrors.New("plain"), ErrEmptyArgumentList) {
		t.Error("plain error should not match")
	}

	// Matching survives fmt.Errorf wrapping.
	rewrapped := fmt.Errorf("while unfolding: %w", err)
	if !IsErrorType(rewrapped, ErrEmptyArgumentList) {
		t.Error("expected match through error wrapping")
	}
}

func TestErrorContext(t *testing.T) {
	err := NewMalformedFoldArgument("[5:2:0]", "step must not be zero")

	span, ok := err.GetContext("span")
	if !ok || span != "[5:2:0]" {
		t.Errorf("expected span context, got %v (present=%v)", span, ok)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Error("unexpected context key")
	}
}
