// ABOUTME: Package logger for persistence steps.
// ABOUTME: Silent until the host program installs one with SetLogger.

package deck

import (
	"io"

	"github.com/charmbracelet/log"
)

var logger = log.New(io.Discard)

// SetLogger routes debug output of save and load steps to l. A nil l
// silences the package again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
