package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeRootType, "root element must be a graph, got %s", "node")

	if err.Code != ErrCodeRootType {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRootType)
	}

	if err.Message != "root element must be a graph, got node" {
		t.Errorf("Message = %v, want %v", err.Message, "root element must be a graph, got node")
	}

	expected := "ROOT_TYPE: root element must be a graph, got node"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrCodeComponentInvocation, cause, "component %s", "Try")

	if err.Code != ErrCodeComponentInvocation {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeComponentInvocation)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if got := err.Error(); got != "COMPONENT_INVOCATION: component Try: boom" {
		t.Errorf("Error() = %q", got)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeRootType, "test"),
			code:     ErrCodeRootType,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeRootType, "test"),
			code:     ErrCodeRootInvocation,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeRootInvocation, New(ErrCodeValidation, "inner"), "outer"),
			code:     ErrCodeRootInvocation,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeRecursionLimit, "test"), ErrCodeRecursionLimit},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"component invocation", New(ErrCodeComponentInvocation, "x"), false},
		{"root type", New(ErrCodeRootType, "x"), true},
		{"root invocation", New(ErrCodeRootInvocation, "x"), true},
		{"recursion limit", New(ErrCodeRecursionLimit, "x"), true},
		{"plain", errors.New("x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}
