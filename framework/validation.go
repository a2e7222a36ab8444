package framework

import (
	"fmt"
	"strings"
	"sync"
)

// ValidationEntry is one distinct GPU error seen during a run.
type ValidationEntry struct {
	Stage      string
	Message    string
	Count      int
	FirstFrame uint64
}

// ValidationRecorder collects errors surfaced by the graphics API while
// frames are recorded. Each distinct (stage, message) pair is logged once.
type ValidationRecorder struct {
	mu      sync.Mutex
	logger  Logger
	index   map[string]int
	entries []ValidationEntry
	total   int
}

func NewValidationRecorder(logger Logger) *ValidationRecorder {
	return &ValidationRecorder{
		logger: orNop(logger),
		index:  make(map[string]int),
	}
}

// Record returns true when err is the first occurrence of its kind.
func (r *ValidationRecorder) Record(frame uint64, stage string, err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	key := stage + "\x00" + msg

	r.mu.Lock()
	defer r.mu.Unlock()
	r.total++
	if i, ok := r.index[key]; ok {
		r.entries[i].Count++
		return false
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, ValidationEntry{
		Stage:      stage,
		Message:    msg,
		Count:      1,
		FirstFrame: frame,
	})
	r.logger.Errorf("frame %d: %s: %s", frame, stage, msg)
	return true
}

func (r *ValidationRecorder) Entries() []ValidationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ValidationEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *ValidationRecorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

func (r *ValidationRecorder) Summary() string {
	entries := r.Entries()
	if len(entries) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation error(s), %d distinct:", r.Total(), len(entries)))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n  [%s] x%d (first at frame %d): %s", e.Stage, e.Count, e.FirstFrame, e.Message))
	}
	return sb.String()
}
