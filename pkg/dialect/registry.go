package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Lookup is Get with an error listing the available dialects.
func Lookup(name string) (*Dialect, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrDialectRequired
	}
	d, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDialect, name, strings.Join(List(), ", "))
	}
	return d, nil
}

// ByID returns the first registered dialect with the given ID.
// Custom dialects share one ID, so ByID(Custom) is only useful as an existence check.
func ByID(id ID) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	if d, ok := dialects[id.String()]; ok && d.ID == id {
		return d, true
	}
	for _, d := range dialects {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Register registers a dialect in the global registry, replacing any
// dialect with the same name.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	if err := d.Validate(); err != nil {
		panic(err)
	}
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// RegisterCustom validates and registers a dialect defined at runtime.
func RegisterCustom(d *Dialect) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.ID = Custom
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
	return nil
}

// Unregister removes a dialect. Used by tests.
func Unregister(name string) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	delete(dialects, strings.ToLower(name))
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered dialects ordered by ID, then name.
func All() []*Dialect {
	dialectsMu.RLock()
	all := make([]*Dialect, 0, len(dialects))
	for _, d := range dialects {
		all = append(all, d)
	}
	dialectsMu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].ID != all[j].ID {
			return all[i].ID < all[j].ID
		}
		return all[i].Name < all[j].Name
	})
	return all
}
