package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmptyIsDeadState(t *testing.T) {
	got := normalize(nil)
	assert.Equal(t, deadState, got)

	got = normalize([]Position{{Offset: 2, Residual: -1}})
	assert.Equal(t, deadState, got)
}

func TestNormalizeSubtractsMinOffset(t *testing.T) {
	got := normalize([]Position{
		{Offset: 3, Residual: 1},
		{Offset: 1, Residual: 0},
		{Offset: 5, Residual: 2},
	})
	require.Len(t, got.positions, 3)
	assert.Equal(t, 1, got.offset, "offset should be the minimum input offset")
	for _, p := range got.positions {
		assert.GreaterOrEqual(t, p.Offset, 0)
	}
}

func TestNormalizeSortsAndDedupes(t *testing.T) {
	got := normalize([]Position{
		{Offset: 2, Residual: 1},
		{Offset: 0, Residual: 1},
		{Offset: 0, Residual: 1}, // duplicate of the previous
		{Offset: 1, Residual: 0},
	})
	want := []Position{
		{Offset: 0, Residual: 1},
		{Offset: 1, Residual: 0},
		{Offset: 2, Residual: 1},
	}
	assert.Equal(t, want, got.positions)
}

func TestNormalizeMaxShift(t *testing.T) {
	got := normalize([]Position{
		{Offset: 0, Residual: 2},
		{Offset: 1, Residual: 3},
	})
	// max over (offset + residual): max(0+2, 1+3) = 4
	assert.Equal(t, 4, got.maxShift)
}

func TestNormalizeEquivalenceIgnoresOffsetShift(t *testing.T) {
	a := normalize([]Position{{Offset: 0, Residual: 1}, {Offset: 1, Residual: 0}})
	b := normalize([]Position{{Offset: 5, Residual: 1}, {Offset: 6, Residual: 0}})
	assert.Equal(t, a.key(), b.key(), "states differing only by a uniform offset shift must normalize identically")
}

func TestStateKeyDistinguishesDifferentPositionSets(t *testing.T) {
	a := normalize([]Position{{Offset: 0, Residual: 1}})
	b := normalize([]Position{{Offset: 0, Residual: 2}})
	assert.NotEqual(t, a.key(), b.key())
}
