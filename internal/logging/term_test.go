package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rlbench/bsuite/internal/logging"
)

func TestTermReportsEveryN(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewTermSink(&buf, 10)
	defer sink.Close()

	for i := 0; i < 30; i++ {
		if err := sink.Append(record("catch/0", i, (i+1)*9, 9, 1)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	lines := strings.Count(buf.String(), "\n")
	// Episode 0 always prints, then every 10th (9, 19, 29).
	if lines != 4 {
		t.Fatalf("expected 4 progress lines, got %d:\n%s", lines, buf.String())
	}
	if !strings.Contains(buf.String(), "catch/0") {
		t.Error("progress lines should name the identifier")
	}
}

func TestTermAlwaysReportsIncomplete(t *testing.T) {
	var buf bytes.Buffer
	sink := logging.NewTermSink(&buf, 100)

	r := record("catch/0", 3, 27, 3, 0)
	r.Incomplete = true
	if err := sink.Append(r); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if !strings.Contains(buf.String(), "incomplete") {
		t.Errorf("incomplete episodes should always be reported:\n%s", buf.String())
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	a := &collectSink{}
	b := &collectSink{}
	multi := logging.MultiSink(a, nil, b)

	if err := multi.Append(record("catch/0", 0, 9, 9, 1)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if len(a.records) != 1 || len(b.records) != 1 {
		t.Fatalf("fan-out missed a sink: %d, %d", len(a.records), len(b.records))
	}

	if err := multi.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if a.closes != 1 || b.closes != 1 {
		t.Errorf("fan-out close missed a sink: %d, %d", a.closes, b.closes)
	}
}
