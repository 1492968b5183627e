// Package logging provides the result sinks that durably record per-episode
// statistics, and the instrumented environment wrapper that feeds them.
package logging

import "github.com/rlbench/bsuite/internal/models"

// Sink durably records one row of statistics per completed episode. Append
// failures wrap models.ErrSinkWrite; the wrapper surfaces them to the caller
// rather than dropping the record. Close is idempotent.
type Sink interface {
	Append(models.Record) error
	Close() error
}

// MultiSink fans records out to every sink. Useful for echoing terminal
// progress alongside a durable backend.
type multiSink struct {
	sinks []Sink
}

// MultiSink creates a Sink that forwards Append/Close to all sinks.
func MultiSink(sinks ...Sink) Sink {
	out := &multiSink{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			out.sinks = append(out.sinks, s)
		}
	}
	return out
}

func (m *multiSink) Append(r models.Record) error {
	for _, s := range m.sinks {
		if err := s.Append(r); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiSink) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
