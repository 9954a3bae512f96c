// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

// trieNode is one node of the encoder's de-la-Briandais (left-child
// right-sibling) trie. Keys are byte strings; the path from an implicit
// root to a terminating node spells out a stored key.
//
// Nodes live in one contiguous arena (dict.nodes); right/down links are
// int32 indices into it rather than owning pointers. A node's right and
// down subtrees are always disjoint, so the arena can be truncated in
// O(1) on reset instead of walked and freed.
type trieNode struct {
	c     byte
	val   int32 // -1 if this node does not terminate a stored key
	right int32 // next sibling at this depth, -1 if none
	down  int32 // first child one depth deeper, -1 if none
}

const nilNode int32 = -1

// dict is the encoder's dictionary: a trie over byte strings, each mapping
// to an assigned codeword.
type dict struct {
	nodes     []trieNode
	roots     int32 // index of the first root-level sibling, or nilNode
	seed      int   // arena length immediately after the 256 single-byte seeds
	seedRoots int32 // value of roots immediately after the 256 single-byte seeds
}

// newDict returns a dictionary pre-seeded with all 256 single-byte keys
// mapped to codewords 0..255, with its arena pre-allocated to the full
// maxCodes capacity so that growth never reallocates mid-stream.
func newDict() *dict {
	d := &dict{nodes: make([]trieNode, 0, maxCodes)}
	d.seedLiterals()
	return d
}

func (d *dict) seedLiterals() {
	d.nodes = d.nodes[:0]
	d.roots = nilNode
	for c := 0; c < numLiterals; c++ {
		d.add([]byte{byte(c)}, c)
	}
	d.seed = len(d.nodes)
	d.seedRoots = d.roots
}

// reset discards every dynamically assigned entry and reinitializes the
// dictionary to the 256 single-byte seeds by truncating the arena rather
// than rebuilding it node by node. Insertion only ever appends, and every
// root-level byte is already seeded, so the seeds' right links point only
// at other seeds; their down links, however, may point at appended nodes.
// Truncating the slice, clearing the seeds' down links and restoring the
// cached root link is exactly equivalent to rebuilding the seed trie.
func (d *dict) reset() {
	d.nodes = d.nodes[:d.seed]
	for i := range d.nodes {
		d.nodes[i].down = nilNode
	}
	d.roots = d.seedRoots
}

// newChild allocates a new, empty node and returns its index.
func (d *dict) newChild(c byte) int32 {
	d.nodes = append(d.nodes, trieNode{c: c, val: -1, right: nilNode, down: nilNode})
	return int32(len(d.nodes) - 1)
}

// add inserts key with associated non-negative value. Keys of length 0 and
// negative values are silently ignored, which keeps seeding the 256 literal
// entries trivial at construction time. Inserting an already-present key
// overwrites its value.
func (d *dict) add(key []byte, value int) {
	if len(key) == 0 || value < 0 {
		return
	}

	// Find or create the root-level sibling for key[0].
	cur := d.findOrAddSibling(&d.roots, key[0])
	for i := 1; i < len(key); i++ {
		if d.nodes[cur].down == nilNode {
			d.nodes[cur].down = d.newChild(key[i])
			cur = d.nodes[cur].down
		} else {
			cur = d.findOrAddSibling(&d.nodes[cur].down, key[i])
		}
	}
	d.nodes[cur].val = int32(value)
}

// findOrAddSibling walks the sibling chain starting at *head looking for a
// node labeled c, appending a new sibling at the end of the chain if none
// exists, and returns its index.
func (d *dict) findOrAddSibling(head *int32, c byte) int32 {
	if *head == nilNode {
		*head = d.newChild(c)
		return *head
	}
	cur := *head
	for d.nodes[cur].c != c {
		if d.nodes[cur].right == nilNode {
			d.nodes[cur].right = d.newChild(c)
			return d.nodes[cur].right
		}
		cur = d.nodes[cur].right
	}
	return cur
}

// get walks the trie along key and reports its terminal node's value,
// which may be -1 if the path exists as a pure prefix but does not
// terminate a stored key. ok is false if any byte of key cannot be matched
// at its depth.
func (d *dict) get(key []byte) (value int, ok bool) {
	if len(key) == 0 {
		return 0, false
	}
	cur := d.roots
	for i, c := range key {
		for cur != nilNode && d.nodes[cur].c != c {
			cur = d.nodes[cur].right
		}
		if cur == nilNode {
			return 0, false
		}
		if i != len(key)-1 {
			cur = d.nodes[cur].down
		}
	}
	return int(d.nodes[cur].val), true
}

// isPrefix reports whether every byte of key is matchable along a single
// root-to-descendant path; the terminal node need not carry a value.
func (d *dict) isPrefix(key []byte) bool {
	if len(key) == 0 {
		return false
	}
	cur := d.roots
	for _, c := range key {
		for cur != nilNode && d.nodes[cur].c != c {
			cur = d.nodes[cur].right
		}
		if cur == nilNode {
			return false
		}
		cur = d.nodes[cur].down
	}
	return true
}
