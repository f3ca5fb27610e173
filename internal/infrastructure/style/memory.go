// Package style holds StyleSink implementations for the theme palette.
package style

import "sync"

// Variable is one named style value.
type Variable struct {
	Name  string
	Value string
}

// MemorySink records style variables in first-write order. It is safe for
// concurrent readers while a single writer updates it.
type MemorySink struct {
	mu     sync.RWMutex
	order  []string
	values map[string]string
	writes int
}

// NewMemorySink creates an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]string)}
}

// SetVariable implements ports.StyleSink.
func (s *MemorySink) SetVariable(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
	s.writes++
}

// Get returns the current value of name.
func (s *MemorySink) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Variables returns a snapshot in first-write order.
func (s *MemorySink) Variables() []Variable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Variable, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Variable{Name: name, Value: s.values[name]})
	}
	return out
}

// Writes counts SetVariable calls since creation.
func (s *MemorySink) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
