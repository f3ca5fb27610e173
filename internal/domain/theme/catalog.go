package theme

import "strings"

// DefaultPresetName is the name of the canonical default preset.
const DefaultPresetName = "Default"

// Catalog is an immutable, ordered list of named presets with one canonical
// default. Entries are only ever copied out.
type Catalog struct {
	entries     []ThemeConfig
	index       map[string]int
	defaultName string
}

// NewCatalog validates the entry names and builds a catalog. The entries
// are copied so later changes to the input slice do not leak in.
func NewCatalog(entries []ThemeConfig, defaultName string) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, NewError(ErrCodeValidation, "catalog requires at least one preset", nil, nil)
	}

	c := &Catalog{
		entries:     make([]ThemeConfig, 0, len(entries)),
		index:       make(map[string]int, len(entries)),
		defaultName: defaultName,
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, NewError(ErrCodeValidation, "preset name is required", nil, map[string]interface{}{"index": i})
		}
		if _, exists := c.index[entry.Name]; exists {
			return nil, NewError(ErrCodeDuplicate, "duplicate preset name", nil, map[string]interface{}{"name": entry.Name})
		}
		c.index[entry.Name] = len(c.entries)
		c.entries = append(c.entries, entry.Clone())
	}

	if _, ok := c.index[defaultName]; !ok {
		return nil, NewError(ErrCodeNotFound, "default preset not found", nil, map[string]interface{}{"name": defaultName})
	}
	return c, nil
}

// List returns copies of every preset in catalog order.
func (c *Catalog) List() []ThemeConfig {
	out := make([]ThemeConfig, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Names returns the preset names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Name
	}
	return out
}

// Lookup finds a preset by exact name.
func (c *Catalog) Lookup(name string) (ThemeConfig, bool) {
	i, ok := c.index[name]
	if !ok {
		return ThemeConfig{}, false
	}
	return c.entries[i].Clone(), true
}

// Default returns a copy of the canonical default preset.
func (c *Catalog) Default() ThemeConfig {
	return c.entries[c.index[c.defaultName]].Clone()
}

// DefaultName returns the name of the canonical default preset.
func (c *Catalog) DefaultName() string {
	return c.defaultName
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	return len(c.entries)
}
