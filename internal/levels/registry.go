package levels

import (
	"fmt"
	"sort"
	"sync"
)

// PackInfo contains metadata about a registered level pack.
type PackInfo struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Levels int    `json:"levels"`
}

// Factory produces a level set for a pack.
type Factory func() (Set, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a level pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("levels: pack %q already registered", name))
	}
	factories[name] = f
}

// List returns information about all registered packs, sorted by name.
// Packs whose factory fails are skipped.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(factories))
	for name, f := range factories {
		set, err := f()
		if err != nil {
			continue
		}
		result = append(result, PackInfo{
			Name:   name,
			Title:  set.Title,
			Levels: set.Len(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open builds the level set of a registered pack.
func Open(name string) (Set, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return Set{}, fmt.Errorf("levels: unknown pack %q", name)
	}
	set, err := f()
	if err != nil {
		return Set{}, fmt.Errorf("levels: pack %q: %w", name, err)
	}
	return set, nil
}

// Exists checks if a pack with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Built-in packs
func init() {
	Register("classic", Builtin)
	Register("freebounce", func() (Set, error) {
		return Set{Title: "Free Bounce"}, nil
	})
}
