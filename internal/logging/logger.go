// Package logging provides the leveled, optionally colored line logger used
// for all user-visible output.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/imgnorm/internal/config"
	"github.com/backmassage/imgnorm/internal/term"
)

// Logger writes timestamped "[LEVEL] text" lines. ERROR goes to the error
// writer; every other level (warnings included) goes to the output writer.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
}

// NewLogger configures terminal colors from cfg and returns a logger bound
// to stdout and stderr.
func NewLogger(cfg *config.Config) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	term.Configure(cfg.ColorMode)
	return &Logger{out: os.Stdout, errOut: os.Stderr, now: time.Now}, nil
}

// New returns a logger writing to the given writers without touching the
// global color state. Intended for tests and embedding.
func New(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut, now: time.Now}
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+term.Paint(style, "["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}
