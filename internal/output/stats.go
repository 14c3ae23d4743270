package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"epigrid/internal/core"
	"epigrid/internal/sims/sird"
)

// StatsHeader is the first record of a daily statistics file.
var StatsHeader = []string{"day", "new_infected", "infectious", "susceptible", "infected", "recovered", "dead"}

// StatsWriter records one CSV row per day.
type StatsWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// NewStatsWriter writes the header to out. closer may be nil.
func NewStatsWriter(out io.Writer, closer io.Closer) (*StatsWriter, error) {
	s := &StatsWriter{w: csv.NewWriter(out), closer: closer}
	if err := s.w.Write(StatsHeader); err != nil {
		return nil, fmt.Errorf("write stats header: %w", err)
	}
	return s, nil
}

// CreateStatsFile creates path and returns a writer owning it.
func CreateStatsFile(path string) (*StatsWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create stats file: %w", err)
	}
	s, err := NewStatsWriter(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// Emit appends the day's counters and census.
func (s *StatsWriter) Emit(_ context.Context, d sird.Day) error {
	c := d.Grid.Census()
	rec := []string{
		strconv.Itoa(d.Index),
		strconv.FormatInt(d.Stats.NewInfected, 10),
		strconv.FormatInt(d.Stats.Infectious, 10),
		strconv.Itoa(c[core.Susceptible]),
		strconv.Itoa(c[core.Infected]),
		strconv.Itoa(c[core.Recovered]),
		strconv.Itoa(c[core.Dead]),
	}
	if err := s.w.Write(rec); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes pending rows and closes the underlying file, if any.
func (s *StatsWriter) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
