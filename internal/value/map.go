package value

// Map is an insertion-indexed mapping from value reference to value
// reference. Keys are compared and hashed with Eql/Hash (§4.1), so an int
// key of 1 and a num key of 1.0 collide. Lookup uses Hash as a bucket index
// with an Eql tie-break; iteration order (internal/iterate) follows
// insertion order via entries.
type Map struct {
	entries []mapEntry
	buckets map[uint32][]int // hash -> indices into entries; deleted entries stay in place, flagged deleted
}

type mapEntry struct {
	key, val Value
	deleted  bool
}

func (*Map) tag() Tag { return TagMap }

// NewMap constructs an empty map.
func NewMap() *Map {
	return &Map{buckets: make(map[uint32][]int)}
}

// Len reports the number of live entries.
func (m *Map) Len() int {
	n := 0
	for _, e := range m.entries {
		if !e.deleted {
			n++
		}
	}

	return n
}

// find returns the entries index of a live entry whose key is Eql to key,
// or -1.
func (m *Map) find(key Value) int {
	h := Hash(key)
	for _, idx := range m.buckets[h] {
		e := &m.entries[idx]
		if !e.deleted && Eql(e.key, key) {
			return idx
		}
	}

	return -1
}

// Get looks up key by Eql. ok is false when absent.
func (m *Map) Get(key Value) (Value, bool) {
	idx := m.find(key)
	if idx < 0 {
		return nil, false
	}

	return m.entries[idx].val, true
}

// Has reports key membership.
func (m *Map) Has(key Value) bool { return m.find(key) >= 0 }

// Set inserts or replaces key -> val. Callers implementing the §4.3 map
// index-set semantics are responsible for duping key/val before calling
// Set; Set itself stores exactly what it is given.
func (m *Map) Set(key, val Value) {
	if idx := m.find(key); idx >= 0 {
		m.entries[idx].val = val

		return
	}
	h := Hash(key)
	idx := len(m.entries)
	m.entries = append(m.entries, mapEntry{key: key, val: val})
	m.buckets[h] = append(m.buckets[h], idx)
}

// Delete removes key if present, reporting whether it was found.
func (m *Map) Delete(key Value) bool {
	idx := m.find(key)
	if idx < 0 {
		return false
	}
	m.entries[idx].deleted = true
	m.entries[idx].key, m.entries[idx].val = nil, nil

	return true
}

// Entries returns the live (key, value) pairs in insertion order. The
// returned slice is a fresh copy; mutating it does not affect the map.
func (m *Map) Entries() []struct{ Key, Val Value } {
	out := make([]struct{ Key, Val Value }, 0, len(m.entries))
	for _, e := range m.entries {
		if !e.deleted {
			out = append(out, struct{ Key, Val Value }{e.key, e.val})
		}
	}

	return out
}
