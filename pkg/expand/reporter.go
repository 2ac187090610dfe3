package expand

import (
	"fmt"
	"io"
)

const bytesPerMB = 1024 * 1024

// Reporter observes an expansion run.
type Reporter interface {
	// Progress is called after every appended copy with the running size.
	// The copy may still be buffered in memory: a later flush can fail, in
	// which case earlier reported sizes never reached the file.
	Progress(size int64)
	// Done is called once after the last copy with the final running size.
	Done(path string, size int64)
}

// ConsoleReporter writes human readable progress lines to W.
type ConsoleReporter struct {
	W io.Writer
}

// NewConsoleReporter returns a reporter printing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{W: w}
}

func (r *ConsoleReporter) Progress(size int64) {
	fmt.Fprintf(r.W, "Current size: %s MB\n", formatMB(size))
}

func (r *ConsoleReporter) Done(path string, size int64) {
	fmt.Fprintf(r.W, "File '%s' has been created with a size of %s MB.\n", path, formatMB(size))
}

// formatMB renders a byte count in mebibytes with two decimals.
func formatMB(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/bytesPerMB)
}

type nopReporter struct{}

func (nopReporter) Progress(int64)     {}
func (nopReporter) Done(string, int64) {}
