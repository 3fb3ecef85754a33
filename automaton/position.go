// Package automaton implements the parametric Levenshtein automaton: an
// offset-based, table-driven DFA that recognizes every string within a
// fixed edit distance of some query, compiled once per distance bound and
// reused across queries.
package automaton

import "sort"

// Position is a single live configuration of the Levenshtein NFA: how many
// characters of the query have been consumed (Offset) and how much edit
// budget remains (Residual). A position is live iff Residual >= 0.
type Position struct {
	Offset   int
	Residual int
}

func (p Position) live() bool {
	return p.Residual >= 0
}

func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Offset != ps[j].Offset {
			return ps[i].Offset < ps[j].Offset
		}
		return ps[i].Residual < ps[j].Residual
	})
}

// dedupe removes adjacent duplicates from an already-sorted slice, reusing
// its backing array.
func dedupe(ps []Position) []Position {
	if len(ps) == 0 {
		return ps
	}
	out := ps[:1]
	for _, p := range ps[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// normalizedState is an NFA state with its minimum offset factored out so
// it can be reused across different absolute query offsets.
// Two normalizedStates are equivalent, and must receive the same dense
// state id, iff their position sequences are identical; offset and
// maxShift are derived from the position sequence and carried alongside
// for the caller's convenience but play no part in state identity.
type normalizedState struct {
	offset    int
	maxShift  int
	positions []Position
}

// deadState is the canonical empty-position state: no live positions, so
// no accepting configuration is reachable from it under any input.
var deadState = normalizedState{}

// key returns a string uniquely identifying this state's position
// sequence, suitable for use as a map key while interning dense state ids
// during ParametricDFA construction.
func (s normalizedState) key() string {
	if len(s.positions) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(s.positions)*8)
	for _, p := range s.positions {
		buf = appendVarint(buf, p.Offset)
		buf = append(buf, ',')
		buf = appendVarint(buf, p.Residual)
		buf = append(buf, ';')
	}
	return string(buf)
}

func appendVarint(buf []byte, v int) []byte {
	neg := v < 0
	if neg {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// normalize canonicalizes a raw set of positions into a normalizedState:
// dead (residual < 0) positions are dropped, the minimum offset is
// subtracted out and returned separately, and the remaining positions are
// sorted and deduplicated.
func normalize(raw []Position) normalizedState {
	live := make([]Position, 0, len(raw))
	for _, p := range raw {
		if p.live() {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return deadState
	}

	m := live[0].Offset
	for _, p := range live[1:] {
		if p.Offset < m {
			m = p.Offset
		}
	}

	shifted := make([]Position, len(live))
	maxShift := 0
	for i, p := range live {
		np := Position{Offset: p.Offset - m, Residual: p.Residual}
		shifted[i] = np
		if sh := np.Offset + np.Residual; sh > maxShift {
			maxShift = sh
		}
	}
	sortPositions(shifted)
	shifted = dedupe(shifted)

	return normalizedState{offset: m, maxShift: maxShift, positions: shifted}
}
