package trello

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterGrantsUpToMaxPermits(t *testing.T) {
	limiter := NewLimiter(5, 10*time.Second)

	for i := 0; i < 5; i++ {
		assert.Equal(t, time.Duration(0), limiter.Acquire(), "acquisition %d should be granted immediately", i+1)
	}
}

func TestLimiterReturnsWaitWhenFull(t *testing.T) {
	limiter := NewLimiter(3, 10*time.Second)

	for i := 0; i < 3; i++ {
		require.Equal(t, time.Duration(0), limiter.Acquire())
	}

	wait := limiter.Acquire()
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, 10*time.Second+time.Millisecond)
}

func TestLimiterGrantsAgainAfterWaiting(t *testing.T) {
	limiter := NewLimiter(2, 100*time.Millisecond)

	require.Equal(t, time.Duration(0), limiter.Acquire())
	require.Equal(t, time.Duration(0), limiter.Acquire())

	wait := limiter.Acquire()
	require.Greater(t, wait, time.Duration(0))

	time.Sleep(wait)
	assert.Equal(t, time.Duration(0), limiter.Acquire())
}

func TestLimiterDenialRecordsNoPermit(t *testing.T) {
	limiter := NewLimiter(1, 10*time.Second)

	require.Equal(t, time.Duration(0), limiter.Acquire())

	// Repeated denials must not consume permits, so the wait stays bounded
	// by the age of the single recorded permit.
	first := limiter.Acquire()
	second := limiter.Acquire()
	require.Greater(t, first, time.Duration(0))
	require.Greater(t, second, time.Duration(0))
	assert.LessOrEqual(t, second, first)
}

func TestLimiterConcurrentAcquire(t *testing.T) {
	const maxPermits = 10
	const callers = 40
	limiter := NewLimiter(maxPermits, 10*time.Second)

	var wg sync.WaitGroup
	results := make([]time.Duration, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = limiter.Acquire()
		}(i)
	}
	wg.Wait()

	granted := 0
	for _, wait := range results {
		if wait == 0 {
			granted++
		}
	}
	assert.Equal(t, maxPermits, granted, "exactly maxPermits callers should be granted with zero wait")
}
