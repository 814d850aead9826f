package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(NoSourceFiles, "no source files found", nil)

	msg := err.Error()
	if !strings.Contains(msg, "NO_SOURCE_FILES") {
		t.Errorf("error message missing code: %q", msg)
	}
	if !strings.Contains(msg, "no source files found") {
		t.Errorf("error message missing text: %q", msg)
	}
}

func TestErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := New(ScanFailed, "failed to walk project tree", cause)

	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("cause not included: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is did not find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestIsCode(t *testing.T) {
	err := New(ConfigInvalid, "bad config", nil)

	if !IsCode(err, ConfigInvalid) {
		t.Error("IsCode failed on matching code")
	}
	if IsCode(err, NoSourceFiles) {
		t.Error("IsCode matched the wrong code")
	}
	if IsCode(stderrors.New("plain"), ConfigInvalid) {
		t.Error("IsCode matched a plain error")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	a := New(NoSourceFiles, "first", nil)
	b := New(NoSourceFiles, "second", nil)

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should match via errors.Is")
	}
}
