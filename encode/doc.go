// Package encode re-serializes decoded bencode documents.
//
// It is a collaborator of the decoder, not part of it: it consumes the
// read-only ir.Doc representation. Encode produces the canonical wire
// bytes of a document or any of its subtrees; because canonical
// bencode is a bijection between value and encoding, encoding a
// successfully decoded document reproduces the input byte for byte.
//
// Dump renders a document as an indented, JSON-like text tree for
// humans, optionally colored in the terminal.
package encode
