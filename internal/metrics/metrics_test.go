package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderProviderAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("espn", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("espn", 80*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("espn")
	if snap.Calls != 2 {
		t.Fatalf("Calls = %d, want 2", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("Errors = %d, want 1", snap.Errors)
	}
	if snap.LastCallLatency != 80*time.Millisecond {
		t.Fatalf("LastCallLatency = %v", snap.LastCallLatency)
	}
}

func TestRecorderRateLimits(t *testing.T) {
	r := NewRecorder()
	r.RecordRateLimit("oddsapi", 30*time.Second)

	if r.RateLimitHits("oddsapi") != 1 {
		t.Fatalf("RateLimitHits = %d, want 1", r.RateLimitHits("oddsapi"))
	}
	if snap := r.Snapshot("oddsapi"); snap.LastRetryAfter != 30*time.Second {
		t.Fatalf("LastRetryAfter = %v", snap.LastRetryAfter)
	}
}

func TestRecorderCacheCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordCacheHit()
	r.RecordCacheHit()
	r.RecordCacheMiss()

	if r.CacheHits() != 2 || r.CacheMisses() != 1 {
		t.Fatalf("cache counters = %d/%d, want 2/1", r.CacheHits(), r.CacheMisses())
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("espn", time.Second, nil)
	r.RecordRateLimit("espn", time.Second)
	r.RecordCacheHit()
	r.RecordCacheMiss()
	r.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	r.RecordPollerCycle(time.Second, nil)

	if r.CacheHits() != 0 || r.ProviderCalls("espn") != 0 {
		t.Fatalf("nil recorder must report zeros")
	}
}

func TestUnknownProviderSnapshotIsZero(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("never-seen"); snap.Calls != 0 || snap.Errors != 0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
