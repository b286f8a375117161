package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*AttemptLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewAttemptLimiter(client, limit, window), mr
}

func TestAttemptLimiter_BlocksAfterLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		blocked, err := l.Blocked(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("Blocked: %v", err)
		}
		if blocked {
			t.Fatalf("blocked after %d failures, limit is 3", i)
		}
		if err := l.Fail(ctx, "10.0.0.1"); err != nil {
			t.Fatalf("Fail: %v", err)
		}
	}

	blocked, err := l.Blocked(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("Blocked: %v", err)
	}
	if !blocked {
		t.Fatalf("expected subject to be blocked after 3 failures")
	}

	other, err := l.Blocked(ctx, "10.0.0.2")
	if err != nil || other {
		t.Fatalf("another subject must not be blocked: %v %v", other, err)
	}
}

func TestAttemptLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1, 30*time.Second)
	ctx := context.Background()

	if err := l.Fail(ctx, "10.0.0.1"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if ttl := mr.TTL("auth:fail:10.0.0.1"); ttl != 30*time.Second {
		t.Fatalf("expected a 30s window, got %v", ttl)
	}

	mr.FastForward(31 * time.Second)

	blocked, err := l.Blocked(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("Blocked: %v", err)
	}
	if blocked {
		t.Fatalf("window must reset after expiry")
	}
}

func TestAttemptLimiter_WindowNotExtended(t *testing.T) {
	l, mr := newTestLimiter(t, 10, 30*time.Second)
	ctx := context.Background()

	_ = l.Fail(ctx, "ip")
	mr.FastForward(20 * time.Second)
	_ = l.Fail(ctx, "ip")

	if ttl := mr.TTL("auth:fail:ip"); ttl != 10*time.Second {
		t.Fatalf("later failures must not extend the window, ttl %v", ttl)
	}
}

func TestAttemptLimiter_RedisDown(t *testing.T) {
	l, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	if _, err := l.Blocked(context.Background(), "ip"); err == nil {
		t.Fatalf("expected an error when redis is unreachable")
	}
}

func TestAttemptLimiter_RepairsCounterWithoutTTL(t *testing.T) {
	l, mr := newTestLimiter(t, 3, 30*time.Second)
	ctx := context.Background()

	// A counter that lost its TTL must not block the subject forever.
	if err := mr.Set("auth:fail:ip", "5"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := l.Fail(ctx, "ip"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if ttl := mr.TTL("auth:fail:ip"); ttl != 30*time.Second {
		t.Fatalf("expected the window to be set, ttl %v", ttl)
	}

	mr.FastForward(31 * time.Second)
	blocked, err := l.Blocked(ctx, "ip")
	if err != nil {
		t.Fatalf("Blocked: %v", err)
	}
	if blocked {
		t.Fatalf("subject must be unblocked once the window ends")
	}
}

// failExpire rejects any pipeline that carries an EXPIRE.
type failExpire struct{}

func (failExpire) DialHook(next redis.DialHook) redis.DialHook { return next }

func (failExpire) ProcessHook(next redis.ProcessHook) redis.ProcessHook { return next }

func (failExpire) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			if cmd.Name() == "expire" {
				return errors.New("i/o timeout")
			}
		}
		return next(ctx, cmds)
	}
}

func TestAttemptLimiter_ExpireFailureLeavesNoCounter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	client.AddHook(failExpire{})
	l := NewAttemptLimiter(client, 1, time.Minute)

	if err := l.Fail(context.Background(), "ip"); err == nil {
		t.Fatalf("expected the failed EXPIRE to be reported")
	}
	if mr.Exists("auth:fail:ip") {
		t.Fatalf("counter written without its window")
	}
}
