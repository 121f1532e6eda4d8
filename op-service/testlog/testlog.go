// Package testlog provides loggers that write to the unit test log.
package testlog

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"

	oplog "github.com/rollbridge/rollbridge/op-service/log"
)

// Testing is the subset of testing.TB the logger needs.
type Testing interface {
	Logf(format string, args ...any)
	Helper()
}

// Logger returns a logger that forwards every record to t.Logf.
func Logger(t Testing, level slog.Level) log.Logger {
	return log.NewLogger(log.NewTerminalHandlerWithLevel(&writer{t: t}, level, false))
}

type writer struct {
	t  Testing
	mu sync.Mutex
}

func (w *writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.t.Helper()
	w.t.Logf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// CapturingLogger keeps the rendered records for assertions.
type CapturingLogger struct {
	log.Logger
	mu  sync.Mutex
	buf bytes.Buffer
}

func CaptureLogger(level slog.Level) *CapturingLogger {
	c := &CapturingLogger{}
	c.Logger = log.NewLogger(oplog.LogfmtMsHandlerWithLevel(&lockedWriter{c: c}, level))
	return c
}

// Lines returns the captured records, one per line.
func (c *CapturingLogger) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := strings.TrimSpace(c.buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

type lockedWriter struct{ c *CapturingLogger }

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	return w.c.buf.Write(p)
}
