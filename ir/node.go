package ir

// NodeID indexes a node within a Doc's arena. The root is always
// NodeID(0).
type NodeID int32

type node struct {
	kind Kind
	span Span
	// pay is the interior of the encoding: the digit run of an
	// integer, the content bytes of a string. Unused for containers.
	pay Span
	// first is the arena index of the first child; count is the
	// number of elements (list) or key/value pairs (dictionary).
	first NodeID
	count int32
	// next is the arena index just past this node's subtree. For a
	// leaf that is the node's own index plus one.
	next NodeID
}

// Doc is a decoded bencode document: the retained input buffer plus
// the frozen node arena built over it. Docs are immutable.
type Doc struct {
	buf   []byte
	nodes []node
}

// Root returns the id of the document's root node.
func (d *Doc) Root() NodeID {
	return 0
}

// NumNodes returns the total number of nodes in the arena.
func (d *Doc) NumNodes() int {
	return len(d.nodes)
}

// Buf returns the underlying input buffer. Callers must not mutate it.
func (d *Doc) Buf() []byte {
	return d.buf
}

// Builder accumulates nodes during one decode pass. It is append-only:
// nodes are never removed, and a container's structural fields are
// filled in by Seal once its children have all been pushed. Doc
// freezes the builder; a builder must not be used after that.
type Builder struct {
	buf   []byte
	nodes []node
}

func NewBuilder(buf []byte) *Builder {
	return &Builder{buf: buf, nodes: make([]node, 0, 16)}
}

// Len returns the number of nodes pushed so far.
func (b *Builder) Len() int {
	return len(b.nodes)
}

func (b *Builder) push(n node) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, n)
	return id
}

// PushInteger appends an integer node. span covers the whole "i...e"
// encoding and num covers the sign and digits inside it.
func (b *Builder) PushInteger(span, num Span) NodeID {
	id := b.push(node{kind: IntegerKind, span: span, pay: num})
	b.nodes[id].next = id + 1
	return id
}

// PushString appends a string node. span covers the whole
// "length:bytes" encoding and payload covers the content bytes.
func (b *Builder) PushString(span, payload Span) NodeID {
	id := b.push(node{kind: StringKind, span: span, pay: payload})
	b.nodes[id].next = id + 1
	return id
}

// PushContainer appends a list or dictionary node whose extent is not
// yet known. The caller must Seal it after its children are pushed.
func (b *Builder) PushContainer(kind Kind, off int) NodeID {
	return b.push(node{kind: kind, span: Span{Off: off}})
}

// Seal completes a container pushed by PushContainer: end is the
// buffer offset just past its closing 'e' and count is the number of
// elements or pairs. Children were appended contiguously after the
// container, so its child range is derived from arena positions.
func (b *Builder) Seal(id NodeID, end, count int) {
	n := &b.nodes[id]
	n.span.Len = end - n.span.Off
	n.first = id + 1
	n.count = int32(count)
	n.next = NodeID(len(b.nodes))
}

// Doc freezes the arena.
func (b *Builder) Doc() *Doc {
	return &Doc{buf: b.buf, nodes: b.nodes}
}
