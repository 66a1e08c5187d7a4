// Package constraint holds the canonical numeric bounds used by every
// validation path, so a single source of truth governs millimeter ranges.
package constraint

import (
	_ "embed"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

var (
	//go:embed data/constraints.yaml
	constraintData []byte

	storeOnce   sync.Once
	cachedStore *Store
	cachedErr   error
)

// Rule is an immutable bound for one numeric design field.
// Rules are defined once at process start and never mutated.
type Rule struct {
	Field string  `json:"field" yaml:"field"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Store is the full ordered rule table.
type Store struct {
	Rules []Rule `json:"rules" yaml:"rules"`

	index map[string]Rule
}

// loadStore loads and caches the rule table from embedded data.
// Because the data is embedded at build time, it is safe (and simpler) to
// parse it once and reuse the in-memory representation for the lifetime of
// the process.
func loadStore() (*Store, error) {
	storeOnce.Do(func() {
		var store Store
		if err := yaml.Unmarshal(constraintData, &store); err != nil {
			cachedErr = pferrors.Wrap(pferrors.ErrCodeInternal, "failed to unmarshal constraint data", err)
			return
		}
		store.index = make(map[string]Rule, len(store.Rules))
		for _, r := range store.Rules {
			store.index[r.Field] = r
		}
		cachedStore = &store
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedStore == nil {
		return nil, pferrors.New(pferrors.ErrCodeInternal, "constraint store not initialized")
	}
	return cachedStore, nil
}

// Rules returns the rule table in canonical order. The returned slice is
// shared; callers must not modify it.
func Rules() ([]Rule, error) {
	store, err := loadStore()
	if err != nil {
		return nil, err
	}
	return store.Rules, nil
}

// Lookup returns the rule for a field, if one exists.
func Lookup(field string) (Rule, bool) {
	store, err := loadStore()
	if err != nil {
		return Rule{}, false
	}
	r, ok := store.index[field]
	return r, ok
}

// maxSuggestDistance caps how far a candidate may be from the input before
// a suggestion is considered noise rather than a likely typo.
const maxSuggestDistance = 3

// Suggest returns the known field name closest to the (unknown) input, or ""
// when nothing is close enough to be a plausible typo.
func Suggest(field string) string {
	store, err := loadStore()
	if err != nil {
		return ""
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, r := range store.Rules {
		d := levenshtein.ComputeDistance(field, r.Field)
		if d < bestDist {
			best = r.Field
			bestDist = d
		}
	}
	return best
}
