package output

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"epigrid/internal/core"
	"epigrid/internal/sims/sird"
)

// DefaultTimingsPath is the timings log in the working directory.
const DefaultTimingsPath = "timings.csv"

// TimingRecord is one line of the timings log.
type TimingRecord struct {
	Mode    sird.Mode
	Width   int
	Height  int
	Days    int
	Workers int
	Elapsed time.Duration
}

// NewTimingRecord builds the record for a finished run of cfg.
func NewTimingRecord(cfg sird.Config, elapsed time.Duration) TimingRecord {
	return TimingRecord{
		Mode:    cfg.Mode,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Days:    cfg.Days,
		Workers: cfg.EffectiveWorkers(),
		Elapsed: elapsed,
	}
}

// String renders mode,WxH,days,workers,seconds.
func (r TimingRecord) String() string {
	return fmt.Sprintf("%s,%dx%d,%d,%d,%s", r.Mode, r.Width, r.Height, r.Days, r.Workers, core.FormatSeconds(r.Elapsed))
}

// AppendTiming appends r as one line to path, creating the file if needed.
func AppendTiming(path string, r TimingRecord) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open timings log: %w", err)
	}
	if _, err := fmt.Fprintln(f, r.String()); err != nil {
		f.Close()
		return fmt.Errorf("append timings log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close timings log: %w", err)
	}
	return nil
}

// ParseTiming parses one line written by AppendTiming.
func ParseTiming(line string) (TimingRecord, error) {
	var r TimingRecord
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 5 {
		return r, fmt.Errorf("timing record %q: want 5 fields, got %d", line, len(fields))
	}
	mode, err := sird.ParseMode(fields[0])
	if err != nil {
		return r, fmt.Errorf("timing record %q: %w", line, err)
	}
	r.Mode = mode
	dims := strings.SplitN(fields[1], "x", 2)
	if len(dims) != 2 {
		return r, fmt.Errorf("timing record %q: bad size %q", line, fields[1])
	}
	if r.Width, err = strconv.Atoi(dims[0]); err != nil {
		return r, fmt.Errorf("timing record %q: width: %w", line, err)
	}
	if r.Height, err = strconv.Atoi(dims[1]); err != nil {
		return r, fmt.Errorf("timing record %q: height: %w", line, err)
	}
	if r.Days, err = strconv.Atoi(fields[2]); err != nil {
		return r, fmt.Errorf("timing record %q: days: %w", line, err)
	}
	if r.Workers, err = strconv.Atoi(fields[3]); err != nil {
		return r, fmt.Errorf("timing record %q: workers: %w", line, err)
	}
	secs, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return r, fmt.Errorf("timing record %q: seconds: %w", line, err)
	}
	r.Elapsed = time.Duration(secs * float64(time.Second))
	return r, nil
}

// ReadTimings parses every non-empty line of path.
func ReadTimings(path string) ([]TimingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timings log: %w", err)
	}
	defer f.Close()
	var out []TimingRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		r, err := ParseTiming(line)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read timings log: %w", err)
	}
	return out, nil
}
