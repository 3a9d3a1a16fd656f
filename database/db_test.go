package database

import (
	"context"
	"errors"
	"testing"
)

func TestIsTransient(t *testing.T) {
	if IsTransient(nil) {
		t.Error("nil is not transient")
	}
	if IsTransient(errors.New("duplicate key")) {
		t.Error("ordinary errors are not transient")
	}
	if !IsTransient(context.DeadlineExceeded) {
		t.Error("deadline exceeded should be transient")
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("transient failure gets one more attempt", func(t *testing.T) {
		calls := 0
		err := WithRetry(func() error {
			calls++
			if calls == 1 {
				return context.DeadlineExceeded
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
	})

	t.Run("retry is bounded to one", func(t *testing.T) {
		calls := 0
		err := WithRetry(func() error {
			calls++
			return context.DeadlineExceeded
		})
		if err != context.DeadlineExceeded {
			t.Fatalf("error = %v, want deadline exceeded", err)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
	})

	t.Run("non-transient failure surfaces immediately", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("validation failed")
		err := WithRetry(func() error {
			calls++
			return sentinel
		})
		if err != sentinel {
			t.Fatalf("error = %v, want sentinel", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}
