// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr diagnostics logger. --verbose enables
// debug, --quiet drops everything below errors, default is info. stdout
// is never touched; it belongs to the match records.
func NewLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	logger := log.New(w)
	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
