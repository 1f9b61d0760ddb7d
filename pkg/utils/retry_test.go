package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("permanent")
		err := Retry(cfg, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
		if calls != cfg.MaxAttempts {
			t.Errorf("expected %d calls, got %d", cfg.MaxAttempts, calls)
		}
	})

	t.Run("fatal errors are not retried", func(t *testing.T) {
		calls := 0
		fatal := errors.New("not found")
		err := Retry(cfg, func() error {
			calls++
			return fatal
		}, fatal)
		if !errors.Is(err, fatal) {
			t.Fatalf("expected %v, got %v", fatal, err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})
}
