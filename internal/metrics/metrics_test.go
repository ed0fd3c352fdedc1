package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("feed", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("feed", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("feed"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("feed"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("feed")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if rec.Snapshot("unknown") != (Snapshot{}) {
		t.Fatalf("expected zero snapshot for unknown provider")
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("feed", 5*time.Second)
	rec.RecordRateLimit("feed", 0)

	if got := rec.RateLimitHits("feed"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("feed"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksLoaderQueriesAndSnapshots(t *testing.T) {
	rec := NewRecorder()
	rec.RecordLoaderCycle(time.Millisecond, nil)
	rec.RecordLoaderCycle(time.Millisecond, errors.New("down"))
	rec.RecordQuery("diff")
	rec.RecordQuery("diff")
	rec.RecordQuery("raw")
	rec.RecordSnapshotWrite("fs", nil)
	rec.RecordSnapshotWrite("fs", errors.New("disk full"))

	if total, failed := rec.LoaderCycles(); total != 2 || failed != 1 {
		t.Fatalf("expected 2/1 loader cycles, got %d/%d", total, failed)
	}
	if rec.Queries("diff") != 2 || rec.Queries("raw") != 1 || rec.Queries("perc") != 0 {
		t.Fatalf("unexpected query counts")
	}
	if rec.SnapshotWrites("fs") != 1 {
		t.Fatalf("expected one successful snapshot write")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("feed", 0, nil)
	rec.RecordRateLimit("feed", 0)
	rec.RecordLoaderCycle(0, nil)
	rec.RecordQuery("raw")
	rec.RecordSnapshotWrite("fs", nil)
	rec.RecordHTTPRequest("GET", "/", 200, 0)
	if rec.ProviderCalls("feed") != 0 || rec.Queries("raw") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
