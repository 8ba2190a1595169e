// Package decode validates and decodes bencode documents.
//
// Decode makes a single recursive-descent pass over a complete,
// in-memory buffer and produces an ir.Doc, a flat arena of spans into
// that buffer. It is strict: it enforces canonical form (minimal
// integer encodings, minimal string length prefixes, strictly
// ascending unique dictionary keys, no trailing bytes) and the first
// violation aborts the whole decode with a single positioned error.
// Non-canonical input is rejected, never repaired, so a successful
// decode certifies that the input is the unique canonical encoding of
// its value.
//
// Decoding is a pure CPU-bound pass with no I/O and no shared state;
// independent calls may run concurrently. Adversarial nesting and
// element counts are bounded by the MaxDepth and MaxElements options.
package decode
