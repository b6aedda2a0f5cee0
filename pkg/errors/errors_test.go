package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnsupportedLanguage, "unsupported file type: %s", ".rb")

	if err.Code != ErrCodeUnsupportedLanguage {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnsupportedLanguage)
	}
	if err.Message != "unsupported file type: .rb" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeBuildError, cause, "image build failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "BUILD_ERROR: image build failed: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeParseError, "bad syntax"), ErrCodeParseError, true},
		{"different code", New(ErrCodeParseError, "bad syntax"), ErrCodeBuildTimeout, false},
		{"wrapped match", fmt.Errorf("outer: %w", New(ErrCodeResolution, "gone")), ErrCodeResolution, true},
		{"plain error", fmt.Errorf("plain"), ErrCodeParseError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeBuildTimeout, "budget exceeded")); got != ErrCodeBuildTimeout {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeBuildTimeout)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPath, "no such file")); got != "no such file" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
