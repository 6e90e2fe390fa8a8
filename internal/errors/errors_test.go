package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    ErrCodeArgument,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with path",
			err: &Error{
				Code:    ErrCodeSource,
				Message: "does not exist",
				Path:    "templates",
			},
			expected: "does not exist 'templates'",
		},
		{
			name: "with underlying error",
			err: &Error{
				Code:    ErrCodeConfig,
				Message: "failed to load",
				Err:     fmt.Errorf("file not found"),
			},
			expected: "failed to load: file not found",
		},
		{
			name: "with path and underlying error",
			err: &Error{
				Code:    ErrCodeRender,
				Message: "failed to create file",
				Path:    "out/nginx.conf",
				Err:     fmt.Errorf("permission denied"),
			},
			expected: "failed to create file 'out/nginx.conf': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &Error{
		Code:    ErrCodeConfig,
		Message: "wrapped error",
		Err:     underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() did not return underlying error")
	}

	errNoWrap := &Error{
		Code:    ErrCodeArgument,
		Message: "no underlying",
	}

	if errNoWrap.Unwrap() != nil {
		t.Errorf("Unwrap() should return nil when no underlying error")
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		target   error
		expected bool
	}{
		{
			name:     "matches sentinel error",
			err:      &Error{Code: ErrCodeSource, Message: "custom message"},
			target:   ErrSource,
			expected: true,
		},
		{
			name:     "different code",
			err:      &Error{Code: ErrCodeSource},
			target:   ErrDestination,
			expected: false,
		},
		{
			name:     "non-Error target",
			err:      &Error{Code: ErrCodeParse},
			target:   fmt.Errorf("regular error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errors.Is(tt.err, tt.target) != tt.expected {
				t.Errorf("Is() = %v, want %v", !tt.expected, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains []string
	}{
		{
			name:     "InvalidValue",
			err:      InvalidValue("--nginx-http-port", "flag", "70000", cause),
			sentinel: ErrInvalidArgument,
			contains: []string{`"70000"`, "--nginx-http-port", "flag", "boom"},
		},
		{
			name:     "Config",
			err:      Config("settings.yaml", "failed to read settings", cause),
			sentinel: ErrConfig,
			contains: []string{"settings.yaml", "failed to read settings"},
		},
		{
			name:     "Source",
			err:      Source("templates", errors.New("does not exist or is not a directory")),
			sentinel: ErrSource,
			contains: []string{"template source 'templates'", "not a directory"},
		},
		{
			name:     "Parse",
			err:      Parse("templates/nginx.conf.template", cause),
			sentinel: ErrTemplateParse,
			contains: []string{"nginx.conf.template", "boom"},
		},
		{
			name:     "Destination",
			err:      Destination("out", "is not a directory", nil),
			sentinel: ErrDestination,
			contains: []string{"out", "is not a directory"},
		},
		{
			name:     "Render",
			err:      Render("out/nginx.conf", "failed to create file", cause),
			sentinel: ErrRender,
			contains: []string{"out/nginx.conf", "boom"},
		},
		{
			name:     "Wrap",
			err:      Wrap(ErrCodeConfig, "failed to load env file", cause),
			sentinel: ErrConfig,
			contains: []string{"failed to load env file: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match sentinel %v", tt.err, tt.sentinel)
			}
			for _, s := range tt.contains {
				if !strings.Contains(tt.err.Error(), s) {
					t.Errorf("expected %q to contain %q", tt.err.Error(), s)
				}
			}
		})
	}
}

func TestUnderlyingErrorReachable(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Render("out/a.conf", "failed to create file", cause)

	if !Is(err, cause) {
		t.Error("expected underlying error to be reachable via Is")
	}

	var e *Error
	if !As(err, &e) {
		t.Fatal("expected As to find *Error")
	}
	if e.Path != "out/a.conf" {
		t.Errorf("Path = %q, want %q", e.Path, "out/a.conf")
	}
}
