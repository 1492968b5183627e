package logging

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rlbench/bsuite/internal/models"
)

// CSVSink writes one destination file per identifier under a results
// directory. It is designed for the deployment where each identifier is run
// by an isolated process with no other writer to the same destination, so no
// inter-process coordination is needed. Every append makes the row durable
// before returning.
type CSVSink struct {
	runID  string
	f      *os.File
	w      *csv.Writer
	closed bool
}

// CSVPath returns the destination file for an identifier within dir.
func CSVPath(dir, bsuiteID string) string {
	safe := strings.ReplaceAll(bsuiteID, "/", "-")
	return filepath.Join(dir, fmt.Sprintf("bsuite_id_%s.csv", safe))
}

// NewCSVSink opens (or creates) the per-identifier file in append mode. The
// header row is written only when the file is newly created, so re-running an
// identifier against an existing destination appends with the same schema.
func NewCSVSink(dir, bsuiteID string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	path := CSVPath(dir, bsuiteID)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(models.RecordColumns); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("writing header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	return &CSVSink{runID: uuid.NewString(), f: f, w: w}, nil
}

func (s *CSVSink) Append(r models.Record) error {
	r.RunID = s.runID
	if err := s.w.Write(recordRow(r)); err != nil {
		return fmt.Errorf("appending row: %v: %w", err, models.ErrSinkWrite)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("flushing row: %v: %w", err, models.ErrSinkWrite)
	}
	// Committed rows must survive the process; push them to disk now.
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %v: %w", s.f.Name(), err, models.ErrSinkWrite)
	}
	return nil
}

func (s *CSVSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}

// recordRow serializes a record in the stable RecordColumns order.
func recordRow(r models.Record) []string {
	return []string{
		r.BsuiteID,
		r.RunID,
		strconv.Itoa(r.Episode),
		strconv.Itoa(r.Steps),
		strconv.Itoa(r.EpisodeLen),
		strconv.FormatFloat(r.Return, 'f', 6, 64),
		strconv.FormatBool(r.Incomplete),
		r.WallTime.Format(time.RFC3339Nano),
	}
}
