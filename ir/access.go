package ir

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/bencode-format/go-bencode/token"
)

// Kind returns the node's type tag.
func (d *Doc) Kind(id NodeID) Kind {
	return d.nodes[id].kind
}

// Span returns the byte range covering exactly the node's encoding.
func (d *Doc) Span(id NodeID) Span {
	return d.nodes[id].span
}

// Raw returns the exact encoding bytes of the node, a view into the
// input buffer. For the root this is the entire document. Callers
// hashing a dictionary (such as a torrent info dict) can feed this
// directly to a digest.
func (d *Doc) Raw(id NodeID) []byte {
	return d.nodes[id].span.Slice(d.buf)
}

// Int64 returns the node's integer value, parsed on demand from its
// span. It panics if the node is not an integer.
func (d *Doc) Int64(id NodeID) int64 {
	n := &d.nodes[id]
	if n.kind != IntegerKind {
		panic(fmt.Sprintf("ir: Int64 on %s node", n.kind))
	}
	v, err := token.ParseInt(n.pay.Slice(d.buf))
	if err != nil {
		// decode validated the span; a failure here means the
		// buffer was mutated after decoding.
		panic(fmt.Sprintf("ir: corrupt integer span %s: %v", n.pay, err))
	}
	return v
}

// StringBytes returns a view of the string node's content bytes,
// excluding the length prefix and separator. It panics if the node is
// not a string.
func (d *Doc) StringBytes(id NodeID) []byte {
	n := &d.nodes[id]
	if n.kind != StringKind {
		panic(fmt.Sprintf("ir: StringBytes on %s node", n.kind))
	}
	return n.pay.Slice(d.buf)
}

// Count returns the number of elements of a list or key/value pairs
// of a dictionary. It panics on leaf nodes.
func (d *Doc) Count(id NodeID) int {
	n := &d.nodes[id]
	if n.kind.IsLeaf() {
		panic(fmt.Sprintf("ir: Count on %s node", n.kind))
	}
	return int(n.count)
}

// Children yields the container's child nodes in encounter order. For
// a dictionary that is the interleaved key, value, key, value, ...
// sequence; Pairs is usually more convenient there. The sequence is
// finite and restartable, and ranging it allocates nothing.
func (d *Doc) Children(id NodeID) iter.Seq[NodeID] {
	n := &d.nodes[id]
	if n.kind.IsLeaf() {
		panic(fmt.Sprintf("ir: Children on %s node", n.kind))
	}
	return func(yield func(NodeID) bool) {
		for c := n.first; c < n.next; c = d.nodes[c].next {
			if !yield(c) {
				return
			}
		}
	}
}

// Pairs yields a dictionary's (key, value) node pairs in key order.
// It panics if the node is not a dictionary.
func (d *Doc) Pairs(id NodeID) iter.Seq2[NodeID, NodeID] {
	n := &d.nodes[id]
	if n.kind != DictionaryKind {
		panic(fmt.Sprintf("ir: Pairs on %s node", n.kind))
	}
	return func(yield func(NodeID, NodeID) bool) {
		for k := n.first; k < n.next; {
			v := d.nodes[k].next
			if !yield(k, v) {
				return
			}
			k = d.nodes[v].next
		}
	}
}

// Lookup finds the value for key in a dictionary by binary search over
// the pair sequence, which decode-time ordering enforcement makes
// sound. The probe for the midpoint pair hops forward from the lowest
// live pair rather than from the front each time. It returns false if
// the key is absent, and panics if the node is not a dictionary.
func (d *Doc) Lookup(id NodeID, key []byte) (NodeID, bool) {
	n := &d.nodes[id]
	if n.kind != DictionaryKind {
		panic(fmt.Sprintf("ir: Lookup on %s node", n.kind))
	}
	lo, hi := 0, int(n.count)
	anchor := n.first // arena index of pair lo's key
	for lo < hi {
		mid := lo + (hi-lo)/2
		k := anchor
		for p := lo; p < mid; p++ {
			k = d.nodes[d.nodes[k].next].next
		}
		switch c := bytes.Compare(key, d.StringBytes(k)); {
		case c == 0:
			return d.nodes[k].next, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
			anchor = d.nodes[d.nodes[k].next].next
		}
	}
	return 0, false
}
