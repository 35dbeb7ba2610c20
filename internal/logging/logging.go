// Package logging builds the leveled logger used by the command layer.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at Info level, or Debug level when
// verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "cbuild-idkit",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
