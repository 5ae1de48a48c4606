package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeManifestParse, "invalid manifest: %s", "crates/foo/Cargo.toml")

	if err.Code != ErrCodeManifestParse {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeManifestParse)
	}
	if !strings.Contains(err.Error(), "crates/foo/Cargo.toml") {
		t.Errorf("Error() = %q, want path in message", err.Error())
	}
	if !strings.Contains(err.Error(), string(ErrCodeManifestParse)) {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeManifestRead, cause, "read %s", "Cargo.toml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error() = %q, want cause in message", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeManifestRead, "oops"), ErrCodeManifestRead, true},
		{"different code", New(ErrCodeManifestRead, "oops"), ErrCodeManifestParse, false},
		{"plain error", stderrors.New("plain"), ErrCodeManifestRead, false},
		{"wrapped structured error", Wrap(ErrCodeInvalidRoot, stderrors.New("x"), "bad root"), ErrCodeInvalidRoot, true},
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
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInternal)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeManifestParse, "manifest is not valid TOML")
	if got := UserMessage(err); got != "manifest is not valid TOML" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}
