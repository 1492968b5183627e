package logging_test

import (
	"encoding/csv"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/rlbench/bsuite/internal/logging"
	"github.com/rlbench/bsuite/internal/models"
)

func record(id string, episode, steps, epLen int, ret float64) models.Record {
	return models.Record{
		BsuiteID:   id,
		Episode:    episode,
		Steps:      steps,
		EpisodeLen: epLen,
		Return:     ret,
		WallTime:   time.Now(),
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return rows
}

func TestCSVHeaderAndRows(t *testing.T) {
	dir := t.TempDir()

	sink, err := logging.NewCSVSink(dir, "catch/0")
	if err != nil {
		t.Fatalf("NewCSVSink failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := sink.Append(record("catch/0", i, (i+1)*9, 9, 1)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	rows := readCSV(t, logging.CSVPath(dir, "catch/0"))
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d rows", len(rows))
	}

	for i, col := range models.RecordColumns {
		if rows[0][i] != col {
			t.Errorf("header column %d is %q, expected %q", i, rows[0][i], col)
		}
	}

	for i, row := range rows[1:] {
		if row[0] != "catch/0" {
			t.Errorf("row %d bsuite_id %q", i, row[0])
		}
		if row[2] != strconv.Itoa(i) {
			t.Errorf("row %d episode column %q", i, row[2])
		}
	}
}

func TestCSVAppendKeepsSchema(t *testing.T) {
	dir := t.TempDir()

	sink, err := logging.NewCSVSink(dir, "bandit/3")
	if err != nil {
		t.Fatalf("NewCSVSink failed: %v", err)
	}
	if err := sink.Append(record("bandit/3", 0, 1, 1, 1)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	sink.Close()

	// Re-open the same destination: same header, no second header row.
	sink, err = logging.NewCSVSink(dir, "bandit/3")
	if err != nil {
		t.Fatalf("re-opening sink failed: %v", err)
	}
	if err := sink.Append(record("bandit/3", 1, 2, 1, 0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	sink.Close()

	rows := readCSV(t, logging.CSVPath(dir, "bandit/3"))
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	for i, col := range models.RecordColumns {
		if rows[0][i] != col {
			t.Fatalf("header changed on reopen: column %d is %q", i, rows[0][i])
		}
	}
	if rows[1][2] != "0" || rows[2][2] != "1" {
		t.Errorf("episode sequence wrong across reopen: %q, %q", rows[1][2], rows[2][2])
	}
}

func TestCSVRowsDurableBeforeClose(t *testing.T) {
	dir := t.TempDir()

	sink, err := logging.NewCSVSink(dir, "catch/1")
	if err != nil {
		t.Fatalf("NewCSVSink failed: %v", err)
	}
	defer sink.Close()

	if err := sink.Append(record("catch/1", 0, 9, 9, -1)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// The row must be on disk before Close.
	rows := readCSV(t, logging.CSVPath(dir, "catch/1"))
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row before Close, got %d", len(rows))
	}
}

func TestCSVCloseIdempotent(t *testing.T) {
	sink, err := logging.NewCSVSink(t.TempDir(), "catch/2")
	if err != nil {
		t.Fatalf("NewCSVSink failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestCSVDistinctRunIDs(t *testing.T) {
	dir := t.TempDir()

	first, err := logging.NewCSVSink(dir, "catch/0")
	if err != nil {
		t.Fatalf("NewCSVSink failed: %v", err)
	}
	first.Append(record("catch/0", 0, 9, 9, 1))
	first.Close()

	second, err := logging.NewCSVSink(dir, "catch/0")
	if err != nil {
		t.Fatalf("NewCSVSink failed: %v", err)
	}
	second.Append(record("catch/0", 0, 9, 9, 1))
	second.Close()

	rows := readCSV(t, logging.CSVPath(dir, "catch/0"))
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][1] == rows[2][1] {
		t.Error("separate sink handles should carry distinct run IDs")
	}
}
