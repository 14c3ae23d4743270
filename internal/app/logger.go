package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the structured logger shared by the commands.
func NewLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}
