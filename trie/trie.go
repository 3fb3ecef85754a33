// Package trie provides a character-keyed prefix tree over a dictionary of
// words, jointly traversed with a compiled Levenshtein automaton
// (github.com/gofuzzy/levdex/automaton) so that approximate-match search
// prunes whole subtrees the moment no accepting configuration is reachable.
package trie

import (
	"github.com/gofuzzy/levdex/automaton"
)

// Trie is a rooted prefix tree over a dictionary of words, plus a cache of
// compiled ParametricDFAs keyed by the edit-distance bounds that have been
// installed on it. Don't create one directly; use New.
//
// Concurrency: a Trie is safe for any number of concurrent Search calls
// against an unchanging tree. Concurrent Insert or Install with any other
// operation is undefined and must be prevented by the caller (single
// writer / many readers).
type Trie struct {
	root *node
	dfas map[int]*automaton.ParametricDFA
}

// New returns a fresh, empty Trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds word to the dictionary. Inserting a word that already exists
// is a no-op observable only in that the terminal node's stored word is
// rewritten to an identical value. Inserting the empty string is a no-op:
// there is no terminal character-keyed node to mark, so Search(d, "")
// will never report it.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	n := t.root
	for _, r := range word {
		n = n.getOrCreate(r)
	}
	n.isWord = true
	n.word = word
}

// Contains reports whether word was previously inserted, following the
// exact child edge at each rune rather than paying for a bound-0 Search.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	n := t.root
	for _, r := range word {
		n = n.child(r)
		if n == nil {
			return false
		}
	}
	return n.isWord
}

// Install compiles and caches a ParametricDFA for edit-distance bound d, so
// that subsequent calls to Search(d, ...) can use it. Installing the same
// bound twice is observationally identical to installing it once: the
// second call simply recompiles and replaces an identical table.
//
// Install fails only when d is out of range; it never mutates the
// dictionary itself.
func (t *Trie) Install(d int) error {
	dfa, err := automaton.NewParametricDFA(d)
	if err != nil {
		return err
	}
	if t.dfas == nil {
		t.dfas = make(map[int]*automaton.ParametricDFA)
	}
	t.dfas[d] = dfa
	return nil
}

// Search returns every inserted word whose Levenshtein distance to query is
// at most d, in the Trie's depth-first order. Searching with a bound that
// was never installed returns an empty result, not an error.
func (t *Trie) Search(d int, query string) []string {
	dfa, ok := t.dfas[d]
	if !ok {
		return nil
	}
	instance := dfa.Bind(query)
	var results []string
	search(t.root, instance.InitialState(), instance, &results)
	return results
}

// search performs the joint DFS: for each child edge, step the automaton,
// prune the subtree if no accepting configuration remains reachable, emit
// the child's word if it both ends a word and is itself an accepting
// configuration, then recurse.
func search(n *node, cur automaton.Cursor, instance *automaton.Instance, results *[]string) {
	for _, c := range n.children {
		next := instance.Step(c.r, cur)
		if !instance.CanMatch(next) {
			continue
		}
		if c.n.isWord && instance.IsMatch(next) {
			*results = append(*results, c.n.word)
		}
		search(c.n, next, instance, results)
	}
}
