// Package registry provides a global registry of named simulation variants.
// Variants register themselves in init() functions, allowing the CLI to list
// and select rule sets without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-squash/internal/config"
)

// Variant is a named rule set: the retarget policy, difficulty escalation and
// whether difficulty keys are honored.
type Variant struct {
	ID          string
	Title       string
	Description string
	Policy      config.PolicyConfig
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a variant by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
