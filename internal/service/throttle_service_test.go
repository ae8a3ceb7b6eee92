package service

import (
	"errors"
	"testing"
	"time"

	"github.com/sofatesting/Sofa-Driving-Test/config"
	"github.com/sofatesting/Sofa-Driving-Test/internal/repository"
)

func newTestThrottle() ThrottleService {
	cfg := &config.Config{}
	cfg.Exam.MaxDailyAttempts = 2
	cfg.Exam.AttemptWindowHours = 24
	return NewThrottleService(repository.NewMemoryAttemptRepository(), cfg)
}

func TestThrottleAllowAllowDeny(t *testing.T) {
	throttle := newTestThrottle()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	if _, err := throttle.CheckAndRecord("a@b.com", now); err != nil {
		t.Fatalf("first attempt: got %v, want allow", err)
	}
	if _, err := throttle.CheckAndRecord("a@b.com", now.Add(time.Minute)); err != nil {
		t.Fatalf("second attempt: got %v, want allow", err)
	}
	if _, err := throttle.CheckAndRecord("a@b.com", now.Add(2*time.Hour)); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("third attempt: got %v, want ErrRateLimited", err)
	}
}

func TestThrottleWindowExpiry(t *testing.T) {
	throttle := newTestThrottle()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	throttle.CheckAndRecord("a@b.com", now)
	throttle.CheckAndRecord("a@b.com", now.Add(time.Minute))

	// Just past 24h from the first attempt: one slot frees up.
	later := now.Add(24*time.Hour + time.Second)
	if _, err := throttle.CheckAndRecord("a@b.com", later); err != nil {
		t.Fatalf("attempt after window expiry: got %v, want allow", err)
	}
	// Second and third attempts are still inside the window.
	if _, err := throttle.CheckAndRecord("a@b.com", later.Add(time.Minute)); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got %v, want ErrRateLimited", err)
	}
}

func TestThrottleDenyDoesNotRecord(t *testing.T) {
	throttle := newTestThrottle()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	throttle.CheckAndRecord("a@b.com", now)
	throttle.CheckAndRecord("a@b.com", now.Add(time.Minute))
	for i := 0; i < 5; i++ {
		throttle.CheckAndRecord("a@b.com", now.Add(time.Duration(2+i)*time.Minute))
	}

	// Only the two accepted starts should count; once they age out the
	// identifier is allowed again. Denials must not have added entries.
	if _, err := throttle.CheckAndRecord("a@b.com", now.Add(24*time.Hour+2*time.Minute)); err != nil {
		t.Fatalf("got %v, want allow after accepted attempts aged out", err)
	}
}

func TestThrottleNormalizesIdentifier(t *testing.T) {
	throttle := newTestThrottle()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	email, err := throttle.CheckAndRecord("  A@B.Com ", now)
	if err != nil {
		t.Fatalf("got %v, want allow", err)
	}
	if email != "a@b.com" {
		t.Fatalf("normalized identifier = %q, want %q", email, "a@b.com")
	}

	// Different spellings of the same address share one attempt log.
	throttle.CheckAndRecord("a@b.com", now.Add(time.Minute))
	if _, err := throttle.CheckAndRecord("A@B.COM", now.Add(2*time.Minute)); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got %v, want ErrRateLimited for same normalized identifier", err)
	}
}

func TestThrottleInvalidIdentifier(t *testing.T) {
	throttle := newTestThrottle()
	now := time.Now()

	for _, id := range []string{"", "   ", "not-an-email", "missing.at.sign"} {
		if _, err := throttle.CheckAndRecord(id, now); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("CheckAndRecord(%q): got %v, want ErrInvalidIdentifier", id, err)
		}
	}
}

func TestThrottleIndependentIdentifiers(t *testing.T) {
	throttle := newTestThrottle()
	now := time.Now()

	throttle.CheckAndRecord("a@b.com", now)
	throttle.CheckAndRecord("a@b.com", now)
	if _, err := throttle.CheckAndRecord("c@d.com", now); err != nil {
		t.Fatalf("unrelated identifier: got %v, want allow", err)
	}
}
