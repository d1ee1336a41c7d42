package diag

import (
	"strings"
	"testing"
)

func TestSinkErrorAndWarn(t *testing.T) {
	s := New()
	pos := Position{File: "t.as", Line: 3}
	s.Error(pos, InvalidOpcode, "unknown instruction")
	s.Warn(pos, MeaninglessLabel, "label ignored")

	if !s.HasErrors() {
		t.Error("HasErrors should be true after Error")
	}
	if len(s.Errors) != 1 || len(s.Warnings) != 1 {
		t.Fatalf("got %d errors, %d warnings; want 1 and 1", len(s.Errors), len(s.Warnings))
	}
	if s.Errors[0].Kind != InvalidOpcode {
		t.Errorf("Kind = %v, want InvalidOpcode", s.Errors[0].Kind)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "t.as", Line: 5}
	if got := p.String(); got != "t.as:5" {
		t.Errorf("String() = %q, want t.as:5", got)
	}
	p.Column = 10
	if got := p.String(); got != "t.as:5:10" {
		t.Errorf("String() with column = %q, want t.as:5:10", got)
	}
}

func TestIsFatal(t *testing.T) {
	if !OutOfMemory.IsFatal() {
		t.Error("OutOfMemory should be fatal")
	}
	if InvalidOpcode.IsFatal() {
		t.Error("InvalidOpcode should not be fatal")
	}
}

func TestFormatErrorsIncludesKindAndMessage(t *testing.T) {
	s := New()
	s.Error(Position{File: "t.as", Line: 1}, InvalidLabel, "bad label")
	out := s.FormatErrors()
	if out == "" {
		t.Fatal("expected non-empty output")
	}
	if !strings.Contains(out, "InvalidLabel") || !strings.Contains(out, "bad label") {
		t.Errorf("FormatErrors() = %q, want it to include the kind and the message", out)
	}
}
