package automaton

// Cursor is a runtime search cursor: the absolute offset
// already consumed from the query, the acceptance bound max_shift, and the
// DFA state id, all as of the most recent Step (or InitialState).
type Cursor struct {
	Offset   int
	MaxShift int
	StateID  int
}

// Instance binds a ParametricDFA to one concrete query string. It owns a
// per-character characteristic-vector cache built once at Bind time so that
// every subsequent Step is constant time. An Instance must not be shared
// across concurrent searches; callers should create one per query.
type Instance struct {
	dfa     *ParametricDFA
	query   []rune
	vectors map[rune][]bool
	zero    []bool
}

// Bind constructs an AutomatonInstance for query against this DFA. The DFA
// itself is untouched; Bind only allocates the instance's own
// characteristic-vector cache.
func (d *ParametricDFA) Bind(query string) *Instance {
	runes := []rune(query)
	span := len(runes) + d.width

	vectors := make(map[rune][]bool, len(runes))
	for _, r := range runes {
		if _, ok := vectors[r]; ok {
			continue
		}
		vec := make([]bool, span)
		for j, q := range runes {
			if q == r {
				vec[j] = true
			}
		}
		vectors[r] = vec
	}

	return &Instance{
		dfa:     d,
		query:   runes,
		vectors: vectors,
		zero:    make([]bool, span),
	}
}

// Bound returns the edit-distance bound this instance's DFA was compiled
// for.
func (a *Instance) Bound() int {
	return a.dfa.bound
}

// InitialState returns the cursor at the start of a search: no query
// characters consumed, the full edit budget available, and the DFA's
// initial state.
func (a *Instance) InitialState() Cursor {
	return Cursor{Offset: 0, MaxShift: a.dfa.bound, StateID: a.dfa.initialID}
}

// characteristicVector returns the cached bit-vector for c, or the shared
// all-zero vector if c never occurs in the query.
func (a *Instance) characteristicVector(c rune) []bool {
	if v, ok := a.vectors[c]; ok {
		return v
	}
	return a.zero
}

// Step consumes input character c from cursor and returns the resulting
// cursor. It extracts the bits of c's characteristic
// vector covering [cursor.Offset, cursor.Offset+2d+1) into a bitmask and
// looks up the corresponding table entry.
func (a *Instance) Step(c rune, cur Cursor) Cursor {
	vec := a.characteristicVector(c)
	width := a.dfa.width

	mask := 0
	for i := 0; i < width; i++ {
		idx := cur.Offset + i
		if idx < len(vec) && vec[idx] {
			mask |= 1 << uint(i)
		}
	}

	t := a.dfa.table[cur.StateID][mask]
	return Cursor{
		Offset:   cur.Offset + t.deltaOffset,
		MaxShift: t.maxShift,
		StateID:  t.next,
	}
}

// CanMatch reports whether any accepting configuration is still reachable
// from cur. It is the pruning predicate used by Trie.Search.
func (a *Instance) CanMatch(cur Cursor) bool {
	return cur.StateID != DeadStateID
}

// IsMatch reports whether cur is an accepting configuration: the
// unconsumed query suffix can be covered entirely by deletions within the
// remaining edit budget.
func (a *Instance) IsMatch(cur Cursor) bool {
	return len(a.query)-cur.Offset <= cur.MaxShift
}
