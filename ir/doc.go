// Package ir provides the decoded representation of a bencode document.
//
// # Overview
//
// A Doc pairs the original input buffer with a flat, append-only arena
// of nodes produced by one decode pass. Nodes own no byte data: each
// one records spans (offset and length) into the buffer and structural
// links expressed as arena indices. The buffer must therefore outlive
// the Doc, and a Doc is immutable once built, so it may be read by any
// number of goroutines without synchronization.
//
// # Arena Layout
//
// Node 0 is always the root. Nodes appear in pre-order: a container is
// followed immediately by its first child's subtree, then its second
// child's subtree, and so on. Every child's span is fully contained in
// its parent's span. Each node additionally records the arena index
// just past its own subtree, which makes stepping to the next sibling
// a constant-time operation.
//
// # Accessors
//
// All accessors are pure reads computed from spans on demand; nothing
// is pre-materialized and repeated traversals yield identical
// sequences. Calling a typed accessor on a node of the wrong kind is a
// programming error and panics; it is never a runtime error condition,
// because a successful decode guarantees every node's shape.
//
// Dictionary keys are validated at decode time to be unique and in
// strictly ascending byte order, which is what makes Lookup's
// comparison search sound.
package ir
