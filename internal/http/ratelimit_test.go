package http

import (
	nethttp "net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quotaHeaders(limit, remaining string) nethttp.Header {
	headers := nethttp.Header{}
	if limit != "" {
		headers.Set(headerRateLimit, limit)
	}
	if remaining != "" {
		headers.Set(headerRateRemaining, remaining)
	}

	return headers
}

func TestRateLimitTracker_Record(t *testing.T) {
	var tracker rateLimitTracker

	assert.Nil(t, tracker.read())

	tracker.record(quotaHeaders("240", "239"))

	snapshot := tracker.read()
	require.NotNil(t, snapshot)
	assert.Equal(t, 240, snapshot.Limit)
	assert.Equal(t, 239, snapshot.Remaining)
}

func TestRateLimitTracker_RecordKeepsPreviousSnapshotOnBadHeaders(t *testing.T) {
	var tracker rateLimitTracker

	tracker.record(quotaHeaders("240", "239"))
	tracker.record(quotaHeaders("240", "not-a-number"))
	tracker.record(quotaHeaders("", "238"))
	tracker.record(quotaHeaders("-5", "238"))

	snapshot := tracker.read()
	require.NotNil(t, snapshot)
	assert.Equal(t, 239, snapshot.Remaining)
}

func TestRateLimitTracker_ZeroValuesAreValid(t *testing.T) {
	var tracker rateLimitTracker

	tracker.record(quotaHeaders("240", "0"))

	snapshot := tracker.read()
	require.NotNil(t, snapshot)
	assert.Equal(t, 0, snapshot.Remaining)
}

func TestRateLimitTracker_ConcurrentAccess(t *testing.T) {
	var tracker rateLimitTracker

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func(n int) {
			defer wg.Done()
			tracker.record(quotaHeaders("240", strconv.Itoa(n)))
		}(i)

		go func() {
			defer wg.Done()
			_ = tracker.read()
		}()
	}
	wg.Wait()

	snapshot := tracker.read()
	require.NotNil(t, snapshot)
	assert.Equal(t, 240, snapshot.Limit)
	assert.GreaterOrEqual(t, snapshot.Remaining, 0)
	assert.Less(t, snapshot.Remaining, 50)
}
