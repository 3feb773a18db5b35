package tool

import (
	"sort"
	"strings"
	"sync"
)

// Catalog is a thread-safe registry of tools keyed by lowercase name. Lookups
// are case-insensitive; registering a tool under an existing name replaces
// the previous entry.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates an empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{tools: make(map[string]GenericTool)}
}

// NewCatalogWithTools creates a catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools registers tools under the lowercase form of their advertised name.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.ToolInfo().Name)] = t
	}
}

// Get retrieves a tool by name, case-insensitively.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[strings.ToLower(name)]
	return t, ok
}

// Has reports whether a tool with the given name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Names returns the sorted lowercase names of all registered tools.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}
