package logging_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rlbench/bsuite/internal/logging"
)

func TestBoltInterleavedWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsuite.db")

	// Two independent handles, as two processes running different
	// identifiers against one shared store would hold.
	a := logging.NewBoltSink(path, "", time.Second)
	b := logging.NewBoltSink(path, "", time.Second)
	defer a.Close()
	defer b.Close()

	for i := 0; i < 10; i++ {
		if err := a.Append(record("catch/0", i, (i+1)*9, 9, 1)); err != nil {
			t.Fatalf("writer a append %d failed: %v", i, err)
		}
		if err := b.Append(record("bandit/0", i, i+1, 1, 0)); err != nil {
			t.Fatalf("writer b append %d failed: %v", i, err)
		}
	}

	records, err := logging.ReadAll(path, "")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(records))
	}

	// Every row must be internally consistent: fields from two different
	// appends never merge.
	perID := make(map[string][]int)
	for _, r := range records {
		switch r.BsuiteID {
		case "catch/0":
			if r.EpisodeLen != 9 || r.Return != 1 {
				t.Errorf("merged or corrupt row: %+v", r)
			}
		case "bandit/0":
			if r.EpisodeLen != 1 || r.Return != 0 {
				t.Errorf("merged or corrupt row: %+v", r)
			}
		default:
			t.Errorf("unexpected identifier %q", r.BsuiteID)
		}
		perID[r.BsuiteID] = append(perID[r.BsuiteID], r.Episode)
	}

	for id, episodes := range perID {
		for i, ep := range episodes {
			if ep != i {
				t.Errorf("%s: episode sequence broken at %d: %v", id, i, episodes)
				break
			}
		}
	}
}

func TestBoltRunIDsDistinguishWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsuite.db")

	a := logging.NewBoltSink(path, "", time.Second)
	b := logging.NewBoltSink(path, "", time.Second)

	if err := a.Append(record("catch/0", 0, 9, 9, 1)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := b.Append(record("catch/1", 0, 9, 9, 1)); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	records, err := logging.ReadAll(path, "")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(records))
	}
	if records[0].RunID == records[1].RunID {
		t.Error("separate handles should carry distinct run IDs")
	}
	if records[0].RunID == "" || records[1].RunID == "" {
		t.Error("run IDs must be populated")
	}
}

func TestBoltCustomBucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bsuite.db")

	sink := logging.NewBoltSink(path, "smoke", time.Second)
	if err := sink.Append(record("catch/0", 0, 9, 9, 1)); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	records, err := logging.ReadAll(path, "smoke")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 row in custom bucket, got %d", len(records))
	}

	// The default bucket stays empty.
	records, err = logging.ReadAll(path, "")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty default bucket, got %d rows", len(records))
	}
}

func TestBoltCloseIdempotent(t *testing.T) {
	sink := logging.NewBoltSink(filepath.Join(t.TempDir(), "bsuite.db"), "", time.Second)
	if err := sink.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
