package lease

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/port"
)

var _ port.SegmentLocker = (*SegmentLease)(nil)

const keyPrefix = "auction:segment:"

// releaseScript deletes the lease only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// extendScript resets the TTL only if this holder still owns the lease.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

// SegmentLease serializes resolution passes across processes with a
// SET NX lease per segment. A holder renews its lease every third of the
// TTL until it unlocks, so the TTL only bounds how long a crashed holder
// can block a segment.
type SegmentLease struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	logger *slog.Logger
}

func NewSegmentLease(client *redis.Client, ttl, retry time.Duration, logger *slog.Logger) *SegmentLease {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if retry <= 0 {
		retry = 25 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SegmentLease{client: client, ttl: ttl, retry: retry, logger: logger}
}

// Lock polls until the lease for key is acquired or ctx is done.
func (l *SegmentLease) Lock(ctx context.Context, key domain.SegmentKey) (func(), error) {
	name := leaseKey(key)
	token := uuid.NewString()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, name, token, l.ttl).Result()
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("acquire lease %s: %w", name, err)
		}
		if ok {
			return l.hold(name, token), nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// hold keeps the lease alive until the returned unlock is called. Unlock is
// safe to call more than once.
func (l *SegmentLease) hold(name, token string) func() {
	stop := make(chan struct{})
	done := make(chan struct{})
	go l.keepAlive(name, token, stop, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			l.release(name, token)
		})
	}
}

func (l *SegmentLease) keepAlive(name, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	every := l.ttl / 3
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		ctx, cancel := context.WithTimeout(context.Background(), every)
		held, err := extendScript.Run(ctx, l.client, []string{name}, token, l.ttl.Milliseconds()).Int()
		cancel()
		switch {
		case err != nil:
			l.logger.Warn("extend segment lease", slog.String("key", name), slog.Any("error", err))
		case held == 0:
			// Another process may now run a pass on this segment.
			l.logger.Error("segment lease lost", slog.String("key", name))
			return
		}
	}
}

// release runs on a fresh context so a cancelled request still frees the
// lease.
func (l *SegmentLease) release(name, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), l.ttl)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{name}, token).Err(); err != nil {
		l.logger.Warn("release segment lease", slog.String("key", name), slog.Any("error", err))
	}
}

func leaseKey(key domain.SegmentKey) string {
	return keyPrefix + key.String()
}
