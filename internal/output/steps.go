package output

import (
	"fmt"
	"io"
)

// Steps prints the per-file progress lines the scaffolder emits while it
// creates directories and files. It is a thin wrapper so commands and tests
// can redirect output.
type Steps struct {
	w io.Writer
}

// NewSteps creates a step printer writing to w.
func NewSteps(w io.Writer) *Steps {
	return &Steps{w: w}
}

// OK reports a completed step.
func (s *Steps) OK(format string, args ...interface{}) {
	fmt.Fprintf(s.w, "%s %s\n", colorize(colorGreen, "✓"), fmt.Sprintf(format, args...))
}

// Warn reports a skipped or noteworthy step.
func (s *Steps) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.w, "%s %s\n", colorize(colorYellow, "!"), fmt.Sprintf(format, args...))
}

// Fail reports a failed step. Failures are also returned as errors by the
// operation that hit them; this line is for operator context only.
func (s *Steps) Fail(format string, args ...interface{}) {
	fmt.Fprintf(s.w, "%s %s\n", colorize(colorRed, "✗"), fmt.Sprintf(format, args...))
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}
