package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksOperationsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOperation(OpFormat, "DEFAULT", 10*time.Microsecond, nil)
	rec.RecordOperation(OpFormat, "custom", 15*time.Microsecond, errors.New("boom"))

	if got := rec.OperationCalls(OpFormat); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.OperationErrors(OpFormat); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastLatency(OpFormat); got != 15*time.Microsecond {
		t.Fatalf("expected last latency to be 15us, got %s", got)
	}

	snap := rec.Snapshot(OpFormat)
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderSeparatesOperations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOperation(OpFormat, "DEFAULT", time.Microsecond, nil)
	rec.RecordOperation(OpParse, "DATEONLY", time.Microsecond, errors.New("bad text"))

	if got := rec.OperationCalls(OpParse); got != 1 {
		t.Fatalf("expected 1 parse call, got %d", got)
	}
	if got := rec.OperationErrors(OpFormat); got != 0 {
		t.Fatalf("expected no format errors, got %d", got)
	}
}

func TestNilRecorderIsNoOp(t *testing.T) {
	var rec *Recorder
	rec.RecordOperation(OpFormat, "DEFAULT", time.Microsecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if got := rec.OperationCalls(OpFormat); got != 0 {
		t.Fatalf("expected zero calls from nil recorder, got %d", got)
	}
}
