package lease

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-auction/internal/core/domain"
)

var testKey = domain.SegmentKey{AdType: domain.AdTypeBanner, Category: "plumbing"}

func newLease(t *testing.T, ttl time.Duration) (*SegmentLease, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSegmentLease(client, ttl, 5*time.Millisecond, nil), mr
}

func TestLeaseKey(t *testing.T) {
	key := domain.SegmentKey{AdType: domain.AdTypeFeatured, Category: "cleaning", Location: "berlin"}
	assert.Equal(t, "auction:segment:featured/cleaning/berlin", leaseKey(key))
}

func TestSegmentLease_LockAndUnlock(t *testing.T) {
	lease, mr := newLease(t, time.Second)
	name := leaseKey(testKey)

	unlock, err := lease.Lock(context.Background(), testKey)
	require.NoError(t, err)
	assert.True(t, mr.Exists(name))
	assert.Equal(t, time.Second, mr.TTL(name))

	unlock()
	assert.False(t, mr.Exists(name))
	// a second call is a no-op
	unlock()
}

func TestSegmentLease_MutualExclusion(t *testing.T) {
	lease, _ := newLease(t, time.Second)

	var (
		mu      sync.Mutex
		holders int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := lease.Lock(context.Background(), testKey)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			holders++
			maxSeen = max(maxSeen, holders)
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestSegmentLease_ContextCancelled(t *testing.T) {
	lease, _ := newLease(t, time.Second)

	unlock, err := lease.Lock(context.Background(), testKey)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = lease.Lock(ctx, testKey)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSegmentLease_RenewsWhileHeld(t *testing.T) {
	lease, mr := newLease(t, 300*time.Millisecond)
	name := leaseKey(testKey)

	unlock, err := lease.Lock(context.Background(), testKey)
	require.NoError(t, err)

	// Nearly expired; the holder must push the TTL back up.
	mr.SetTTL(name, time.Millisecond)
	require.Eventually(t, func() bool {
		return mr.TTL(name) > 10*time.Millisecond
	}, 2*time.Second, 10*time.Millisecond)

	unlock()
	assert.False(t, mr.Exists(name))
}

func TestSegmentLease_ExpiredHolderKeepsNewLease(t *testing.T) {
	ttl := time.Second
	lease, mr := newLease(t, ttl)
	name := leaseKey(testKey)

	unlockStale, err := lease.Lock(context.Background(), testKey)
	require.NoError(t, err)
	staleToken, err := mr.Get(name)
	require.NoError(t, err)

	mr.FastForward(ttl + time.Millisecond)
	require.False(t, mr.Exists(name))

	unlockFresh, err := lease.Lock(context.Background(), testKey)
	require.NoError(t, err)
	freshToken, err := mr.Get(name)
	require.NoError(t, err)
	require.NotEqual(t, staleToken, freshToken)

	unlockStale()
	got, err := mr.Get(name)
	require.NoError(t, err)
	assert.Equal(t, freshToken, got)

	unlockFresh()
	assert.False(t, mr.Exists(name))
}
