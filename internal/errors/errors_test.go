package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestSentinelsMatchByType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *Error
		want     bool
	}{
		{"validation matches validation", Validation("bad separators"), ErrValidation, true},
		{"parse matches parse", Parsef("bad %s", "input"), ErrParse, true},
		{"conversion does not match parse", Conversion("unknown unit"), ErrParse, false},
		{"timezone matches through wrapping", fmt.Errorf("outer: %w", Timezone("Mars/Base", nil)), ErrTimezone, true},
		{"config matches config", Config("load failed", stderrors.New("boom")), ErrConfig, true},
		{"plain error never matches", stderrors.New("plain"), ErrValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stderrors.Is(tt.err, tt.sentinel); got != tt.want {
				t.Errorf("errors.Is(%v, %s) = %v, want %v", tt.err, tt.sentinel.Type, got, tt.want)
			}
		})
	}
}

func TestIsMessageSpecificTarget(t *testing.T) {
	err := Validation("identical separators")
	if !stderrors.Is(err, New(TypeValidation, "identical separators")) {
		t.Error("expected match on identical type and message")
	}
	if stderrors.Is(err, New(TypeValidation, "something else")) {
		t.Error("expected no match on differing message")
	}
}

func TestIsTypeUnwraps(t *testing.T) {
	err := fmt.Errorf("converting: %w", Conversion("unit %q not found", "parsec2"))
	if !IsType(err, TypeConversion) {
		t.Fatal("IsType should see through fmt wrapping")
	}
	if IsType(err, TypeParse) {
		t.Fatal("IsType matched the wrong type")
	}
}

func TestErrorStringAndContext(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Timezone("Nowhere/City", cause)

	want := `[TIMEZONE_ERROR] unknown timezone "Nowhere/City": no such file`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Context["timezone"] != "Nowhere/City" {
		t.Errorf("context timezone = %v", err.Context["timezone"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	if !err.HasType(TypeTimezone) {
		t.Error("HasType(TypeTimezone) = false")
	}
}
