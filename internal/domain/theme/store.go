package theme

import (
	"slices"
	"sync"
)

// GroupSet records which configuration groups differ between two values.
type GroupSet uint8

func groupBit(g Group) GroupSet {
	return 1 << uint(g)
}

// Has reports whether g is part of the set.
func (s GroupSet) Has(g Group) bool {
	return s&groupBit(g) != 0
}

// Empty reports whether no group changed.
func (s GroupSet) Empty() bool {
	return s == 0
}

// List returns the member groups in declaration order.
func (s GroupSet) List() []Group {
	out := make([]Group, 0, 3)
	for _, g := range Groups() {
		if s.Has(g) {
			out = append(out, g)
		}
	}
	return out
}

// Names returns the serialised member group names.
func (s GroupSet) Names() []string {
	groups := s.List()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	return names
}

// Change describes a single store transition.
type Change struct {
	Previous ThemeConfig
	Current  ThemeConfig
	Groups   GroupSet
}

// Diff computes the change between two configurations. Group membership is
// decided by value equality on each group.
func Diff(previous, current ThemeConfig) Change {
	var groups GroupSet
	if previous.Background != current.Background {
		groups |= groupBit(GroupBackground)
	}
	if !previous.Simulation.Equal(current.Simulation) {
		groups |= groupBit(GroupSimulation)
	}
	if previous.Palette != current.Palette {
		groups |= groupBit(GroupPalette)
	}
	return Change{Previous: previous, Current: current, Groups: groups}
}

// Changed reports whether the transition altered the value at all,
// including the name and description.
func (c Change) Changed() bool {
	return !c.Groups.Empty() || c.Previous.Name != c.Current.Name || c.Previous.Description != c.Current.Description
}

func (c Change) BackgroundChanged() bool { return c.Groups.Has(GroupBackground) }

func (c Change) SimulationChanged() bool { return c.Groups.Has(GroupSimulation) }

func (c Change) PaletteChanged() bool { return c.Groups.Has(GroupPalette) }

// Store holds the single current configuration. It performs no range or
// format validation; every write is a copy-and-set.
type Store struct {
	mu      sync.RWMutex
	current ThemeConfig
}

// NewStore creates a store holding a copy of initial.
func NewStore(initial ThemeConfig) *Store {
	return &Store{current: initial.Clone()}
}

// Current returns a deep copy of the current configuration.
func (s *Store) Current() ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace swaps the whole value.
func (s *Store) Replace(next ThemeConfig) Change {
	return s.mutate(func(cfg *ThemeConfig) {
		*cfg = next.Clone()
	})
}

// MergeBackground assigns one field of the background group.
func (s *Store) MergeBackground(u BackgroundUpdate) Change {
	return s.mutate(func(cfg *ThemeConfig) {
		if u != nil {
			u.apply(&cfg.Background)
		}
	})
}

// MergeSimulation assigns one field of the simulation group.
func (s *Store) MergeSimulation(u SimulationUpdate) Change {
	return s.mutate(func(cfg *ThemeConfig) {
		if u != nil {
			u.apply(&cfg.Simulation)
		}
	})
}

// MergePalette assigns one field of the palette group.
func (s *Store) MergePalette(u PaletteUpdate) Change {
	return s.mutate(func(cfg *ThemeConfig) {
		if u != nil {
			u.apply(&cfg.Palette)
		}
	})
}

// Preview returns the value a background, simulation or palette update
// would produce without committing it.
func Preview[G any](s *Store, u Update[G]) ThemeConfig {
	next := s.Current()
	if u == nil {
		return next
	}
	switch g := any(u).(type) {
	case BackgroundUpdate:
		g.apply(&next.Background)
	case SimulationUpdate:
		g.apply(&next.Simulation)
	case PaletteUpdate:
		g.apply(&next.Palette)
	}
	return next
}

func (s *Store) mutate(fn func(*ThemeConfig)) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current.Clone()
	next := s.current
	next.Simulation.Colors = slices.Clone(s.current.Simulation.Colors)
	fn(&next)
	s.current = next
	return Diff(previous, next.Clone())
}
