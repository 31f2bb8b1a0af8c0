package store

import "sync"

// MemStore is the in-memory reference Store. Sets preserve insertion
// order and Each enumerates keys in the order they were first created,
// so scans are stable. A single mutex covers every operation, which
// satisfies the per-key atomicity contract trivially.
type MemStore struct {
	mu   sync.RWMutex
	sets map[string][]string
	keys []string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		sets: make(map[string][]string),
	}
}

func (m *MemStore) Get(key string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sets[key]
}

func (m *MemStore) Add(key, value string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.sets[key]
	for _, entry := range set {
		if entry == value {
			return Result{Affected: 0, Size: len(set)}
		}
	}
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.sets[key] = append(set, value)
	return Result{Affected: 1, Size: len(set) + 1}
}

func (m *MemStore) Delete(key string, sel Selector) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.sets[key]
	if !ok {
		return Result{}
	}

	switch sel.Mode {
	case DeleteExact:
		for i, entry := range set {
			if entry == sel.Value {
				kept := append(append([]string{}, set[:i]...), set[i+1:]...)
				m.replace(key, kept)
				return Result{Affected: 1, Size: len(kept)}
			}
		}
		return Result{Affected: 0, Size: len(set)}

	case DeleteSetIfMember:
		if !contains(set, sel.Value, sel.Match) {
			return Result{Affected: 0, Size: len(set)}
		}
		fallthrough

	default: // DeleteSet
		m.replace(key, nil)
		return Result{Affected: len(set), Size: 0}
	}
}

func (m *MemStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = make(map[string][]string)
	m.keys = nil
}

func (m *MemStore) Each(visit func(key string, set []string)) {
	m.mu.RLock()
	keys := append([]string{}, m.keys...)
	m.mu.RUnlock()

	for _, key := range keys {
		m.mu.RLock()
		set := m.sets[key]
		m.mu.RUnlock()
		if len(set) > 0 {
			visit(key, set)
		}
	}
}

// replace swaps the set under key, dropping the key when empty. Caller
// holds the write lock.
func (m *MemStore) replace(key string, set []string) {
	if len(set) == 0 {
		delete(m.sets, key)
		for i, k := range m.keys {
			if k == key {
				m.keys = append(m.keys[:i], m.keys[i+1:]...)
				break
			}
		}
		return
	}
	m.sets[key] = set
}

func contains(set []string, value string, match func(value, entry string) bool) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
		if match != nil && match(value, entry) {
			return true
		}
	}
	return false
}
