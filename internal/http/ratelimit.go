package http

import (
	nethttp "net/http"
	"strconv"
	"sync"

	"github.com/ptero-io/ptero/pkg/ptero"
)

const (
	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
)

// rateLimitTracker holds the last quota snapshot observed on a successful
// response. Reads share the lock; each record replaces the whole snapshot
// (last completed response wins).
type rateLimitTracker struct {
	mu       sync.RWMutex
	snapshot *ptero.RateLimits
}

// record replaces the snapshot when both headers are present and parse as
// non-negative integers, and is a no-op otherwise.
func (t *rateLimitTracker) record(headers nethttp.Header) {
	limit, ok := parseQuotaHeader(headers.Get(headerRateLimit))
	if !ok {
		return
	}

	remaining, ok := parseQuotaHeader(headers.Get(headerRateRemaining))
	if !ok {
		return
	}

	t.mu.Lock()
	t.snapshot = &ptero.RateLimits{Limit: limit, Remaining: remaining}
	t.mu.Unlock()
}

// read returns a copy of the snapshot, or nil before the first record.
func (t *rateLimitTracker) read() *ptero.RateLimits {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.snapshot == nil {
		return nil
	}

	snapshot := *t.snapshot

	return &snapshot
}

func parseQuotaHeader(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}

	return parsed, true
}
