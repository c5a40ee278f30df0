package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "driver binary not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "driver binary not found" {
		t.Errorf("expected message 'driver binary not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, "request failed", cause)

	if err.Code != ErrCodeNetwork {
		t.Errorf("expected code %s, got %s", ErrCodeNetwork, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("connection refused")
	ctx := map[string]interface{}{
		"url":    "https://chromedriver.storage.googleapis.com/LATEST_RELEASE",
		"status": 0,
	}

	err := WrapWithContext(ErrCodeNetwork, "release index unreachable", cause, ctx)

	if err.Code != ErrCodeNetwork {
		t.Errorf("expected code %s, got %s", ErrCodeNetwork, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["status"] != 0 {
		t.Errorf("expected status context to round trip")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIsNetwork(t *testing.T) {
	plain := errors.New("boom")
	network := Wrap(ErrCodeNetwork, "GET failed", plain)
	wrapped := fmt.Errorf("lookup: %w", network)

	if IsNetwork(plain) {
		t.Error("plain error should not be a network error")
	}
	if !IsNetwork(network) {
		t.Error("network error not detected")
	}
	if !IsNetwork(wrapped) {
		t.Error("network error not detected through wrapping")
	}
	if IsNetwork(New(ErrCodeResolution, "exhausted")) {
		t.Error("resolution error misclassified as network")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}
	if got := CodeOf(New(ErrCodeInvalidRequest, "bad")); got != ErrCodeInvalidRequest {
		t.Errorf("expected %s, got %s", ErrCodeInvalidRequest, got)
	}
}
