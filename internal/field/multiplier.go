package field

import (
	"fmt"
	"sort"
	"strings"
)

// Multiplier is the single contract both strategies implement: write the
// truncated product of a and b into out. Implementations are stateless and
// safe for concurrent use on disjoint output buffers.
type Multiplier interface {
	// Name returns the human-readable strategy identifier.
	Name() string
	// Mul writes the low-half product of a and b into out, fully
	// overwriting it.
	Mul(out, a, b *Element)
}

// MultiplierFactory provides named access to the registered multiplication
// strategies.
type MultiplierFactory interface {
	// Get returns the multiplier registered under the given key.
	Get(key string) (Multiplier, error)
	// List returns the sorted registry keys.
	List() []string
	// GetAll returns all registered multipliers in key order.
	GetAll() []Multiplier
}

// registryFactory is a map-backed MultiplierFactory.
type registryFactory struct {
	multipliers map[string]Multiplier
}

// NewDefaultFactory returns a factory holding the two built-in strategies
// under the keys "schoolbook" and "karatsuba".
func NewDefaultFactory() MultiplierFactory {
	return &registryFactory{
		multipliers: map[string]Multiplier{
			"schoolbook": ConvolutionMultiplier{},
			"karatsuba":  DecomposedMultiplier{},
		},
	}
}

// Get returns the multiplier registered under key (case-insensitive).
func (f *registryFactory) Get(key string) (Multiplier, error) {
	m, ok := f.multipliers[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("unknown multiplier %q (available: %s)", key, strings.Join(f.List(), ", "))
	}
	return m, nil
}

// List returns the registry keys in sorted order for reproducible iteration.
func (f *registryFactory) List() []string {
	keys := make([]string, 0, len(f.multipliers))
	for k := range f.multipliers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns every registered multiplier, ordered by key.
func (f *registryFactory) GetAll() []Multiplier {
	keys := f.List()
	all := make([]Multiplier, 0, len(keys))
	for _, k := range keys {
		all = append(all, f.multipliers[k])
	}
	return all
}
