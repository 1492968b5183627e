package logging

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/rlbench/bsuite/internal/models"
)

// TermSink writes a human-readable progress line every N episodes to an
// interactive output stream. No durability; intended for local debugging.
type TermSink struct {
	out   io.Writer
	every int

	idColor   *color.Color
	flagColor *color.Color
}

// NewTermSink creates a terminal sink printing every `every` episodes (and
// always the first). every <= 0 prints every episode.
func NewTermSink(out io.Writer, every int) *TermSink {
	if every <= 0 {
		every = 1
	}
	return &TermSink{
		out:       out,
		every:     every,
		idColor:   color.New(color.FgCyan, color.Bold),
		flagColor: color.New(color.FgYellow),
	}
}

func (s *TermSink) Append(r models.Record) error {
	if r.Episode != 0 && (r.Episode+1)%s.every != 0 && !r.Incomplete {
		return nil
	}

	flag := ""
	if r.Incomplete {
		flag = s.flagColor.Sprint(" [incomplete]")
	}
	_, err := fmt.Fprintf(s.out, "%s episode %s | return %.2f | len %s | total steps %s%s\n",
		s.idColor.Sprint(r.BsuiteID),
		humanize.Comma(int64(r.Episode)),
		r.Return,
		humanize.Comma(int64(r.EpisodeLen)),
		humanize.Comma(int64(r.Steps)),
		flag,
	)
	if err != nil {
		return fmt.Errorf("writing progress line: %v: %w", err, models.ErrSinkWrite)
	}
	return nil
}

func (s *TermSink) Close() error {
	return nil
}
