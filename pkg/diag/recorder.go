package diag

import (
	"fmt"
	"sync"
)

// Record is a single message captured by a Recorder.
type Record struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// Recorder keeps diagnostics in memory.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Warn records a warning.
func (r *Recorder) Warn(args ...any) {
	r.add("WARN", args)
}

// Records returns a copy of everything recorded so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Messages returns the "msg" value of every record, in order.
func (r *Recorder) Messages() []string {
	records := r.Records()
	msgs := make([]string, len(records))
	for i, rec := range records {
		msgs[i] = rec.Msg
	}
	return msgs
}

func (r *Recorder) add(level string, args []any) {
	rec := Record{Level: level, Fields: make(map[string]any)}
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		var value any
		if i+1 < len(args) {
			value = args[i+1]
		}
		if key == "msg" {
			rec.Msg = fmt.Sprint(value)
			continue
		}
		rec.Fields[key] = value
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}
