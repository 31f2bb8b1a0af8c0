// Package store defines the keyed-set storage contract the anagram
// service runs against, plus an in-memory reference implementation.
//
// A store maps a canonical key to an ordered, duplicate-free sequence of
// words. Implementations must make each Add and Delete atomic per key: the
// service computes counter deltas from the returned Result and trusts it
// to reflect a single consistent read-modify-write.
package store

// Result reports the outcome of a mutating store operation.
type Result struct {
	// Affected is the number of entries added or removed.
	Affected int
	// Size is the set's size after the operation.
	Size int
}

// DeleteMode selects which entries a Delete removes.
type DeleteMode int

const (
	// DeleteSet removes the whole set under the key.
	DeleteSet DeleteMode = iota
	// DeleteExact removes the entry equal to Selector.Value.
	DeleteExact
	// DeleteSetIfMember removes the whole set, but only if some entry
	// matches Selector.Value per Selector.Match (or exact equality when
	// Match is nil). Guards group deletion against unknown words.
	DeleteSetIfMember
)

// Selector describes a Delete operation.
type Selector struct {
	Mode  DeleteMode
	Value string
	// Match reports whether value structurally matches a stored entry.
	// Consulted only by DeleteSetIfMember, after exact equality.
	Match func(value, entry string) bool
}

// Store is the keyed-set contract consumed by the anagram service.
type Store interface {
	// Get returns the set stored under key, empty if absent. The returned
	// slice must not be mutated by the caller.
	Get(key string) []string

	// Add appends value to the set under key unless an equal entry is
	// already present. Affected is 1 on append, 0 on duplicate; a result
	// of {Affected: 1, Size: 1} signals a brand-new key.
	Add(key, value string) Result

	// Delete removes entries under key per the selector. Affected is the
	// number of entries removed; Size is what remains.
	Delete(key string, sel Selector) Result

	// Clear empties the store.
	Clear()

	// Each invokes visit once per key/set pair, in a stable enumeration
	// order that is consistent across calls.
	Each(visit func(key string, set []string))
}
