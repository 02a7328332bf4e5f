package station

import (
	"spacevenue/internal/config"
)

// Manager owns one engine per configured station, preserving config order
// for display. It replaces any notion of shared global station state: the
// caller constructs it at startup and threads it through explicitly.
type Manager struct {
	order   []string
	engines map[string]*Engine
}

// NewManager builds engines for every configured station. clock and onChange
// are shared across engines; either may be nil.
func NewManager(stations []config.Station, clock Clock, onChange func()) *Manager {
	m := &Manager{engines: make(map[string]*Engine, len(stations))}
	for _, s := range stations {
		m.order = append(m.order, s.Name)
		m.engines[s.Name] = NewEngine(s, clock, onChange)
	}
	return m
}

// Get returns the engine for a station name, or nil if unknown.
func (m *Manager) Get(name string) *Engine {
	return m.engines[name]
}

// Engines returns all engines in configuration order.
func (m *Manager) Engines() []*Engine {
	out := make([]*Engine, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.engines[name])
	}
	return out
}

// Len returns the number of stations.
func (m *Manager) Len() int {
	return len(m.order)
}
