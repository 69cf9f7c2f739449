package cli

import (
	"io"
	"sync"
)

// LogSink is an io.Writer that discards until Enable points it somewhere.
// Loggers are created once at startup; --verbose flips the sink later.
type LogSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *LogSink) Enable(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

func (s *LogSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}
