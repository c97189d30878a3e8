package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"no cause", New(ErrCodeInvalidFormat, "invalid format: %s", "gif"), "INVALID_FORMAT: invalid format: gif"},
		{"with cause", Wrap(ErrCodeWrite, fs.ErrPermission, "write %s", "a.png"), "WRITE_FAILED: write a.png: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndUnwrap(t *testing.T) {
	err := Wrap(ErrCodeWrite, fs.ErrPermission, "write out.png")

	if !Is(err, ErrCodeWrite) {
		t.Error("Is(err, ErrCodeWrite) = false, want true")
	}
	if Is(err, ErrCodeRender) {
		t.Error("Is(err, ErrCodeRender) = true, want false")
	}
	if !stderrors.Is(err, fs.ErrPermission) {
		t.Error("wrapped cause should be reachable through errors.Is")
	}
	if Is(stderrors.New("plain"), ErrCodeWrite) {
		t.Error("plain errors carry no code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFigure, "x")); got != ErrCodeInvalidFigure {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFigure)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidOption, "scale must be positive")); got != "scale must be positive" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("boom")); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
