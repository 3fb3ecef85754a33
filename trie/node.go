package trie

import "sort"

// child is one entry of a node's ordered children: the character-keyed
// children of a node form an ordered association, not an unordered hash
// map, so that search order is deterministic and lookups can use binary
// search.
type child struct {
	r rune
	n *node
}

// node is a single trie node. Nodes are owned by their parent; the Trie
// owns the root.
type node struct {
	children []child
	isWord   bool
	word     string
}

// find locates r among n's children using binary search, returning the
// index of an exact match (ok == true) or the insertion point that keeps
// children sorted (ok == false).
func (n *node) find(r rune) (index int, ok bool) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].r >= r
	})
	if i < len(n.children) && n.children[i].r == r {
		return i, true
	}
	return i, false
}

// child returns the existing child for r, or nil if there is none.
func (n *node) child(r rune) *node {
	if i, ok := n.find(r); ok {
		return n.children[i].n
	}
	return nil
}

// getOrCreate returns the child for r, creating and inserting an ordered
// slot for it if none exists yet. No edge is ever duplicated per parent.
func (n *node) getOrCreate(r rune) *node {
	i, ok := n.find(r)
	if ok {
		return n.children[i].n
	}
	n.children = append(n.children, child{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child{r: r, n: &node{}}
	return n.children[i].n
}
