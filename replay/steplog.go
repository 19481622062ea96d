package replay

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// StepLog receives one line per replayed step.
type StepLog interface {
	Log(line string)
}

// Clearer is implemented by step logs that can be emptied; a Driver clears
// them when a new replay starts.
type Clearer interface {
	Clear()
}

type nopLog struct{}

func (nopLog) Log(string) {}

// MemoryLog keeps step lines in memory. Safe for concurrent use.
type MemoryLog struct {
	mu    sync.Mutex
	lines []string
}

// Log appends line.
func (m *MemoryLog) Log(line string) {
	m.mu.Lock()
	m.lines = append(m.lines, line)
	m.mu.Unlock()
}

// Clear drops every line.
func (m *MemoryLog) Clear() {
	m.mu.Lock()
	m.lines = nil
	m.mu.Unlock()
}

// Lines returns a copy of the logged lines.
func (m *MemoryLog) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)

	return out
}

// LogrusLog writes step lines at Info level.
type LogrusLog struct {
	Logger logrus.FieldLogger
}

// Log implements StepLog.
func (l LogrusLog) Log(line string) {
	l.Logger.Info(line)
}

// WriterLog writes one line per step to W. Write errors are dropped.
type WriterLog struct {
	W io.Writer
}

// Log implements StepLog.
func (l WriterLog) Log(line string) {
	fmt.Fprintln(l.W, line)
}

// Tee fans one line out to several step logs.
type Tee []StepLog

// Log implements StepLog.
func (t Tee) Log(line string) {
	for _, l := range t {
		l.Log(line)
	}
}

// Clear clears every member that is a Clearer.
func (t Tee) Clear() {
	for _, l := range t {
		if c, ok := l.(Clearer); ok {
			c.Clear()
		}
	}
}
