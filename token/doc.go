// Package token provides the low-level scanning layer for bencode
// documents: a cursor over an immutable byte buffer, recognition of
// digit runs, delimiters and type-prefix bytes, and offset-tagged
// lexical errors.
//
// The scanner never copies or mutates the input. Positions are
// expressed as byte offsets into a PosDoc, which renders a quoted
// context sample around the offset for error messages.
//
// # Related Packages
//
//   - github.com/bencode-format/go-bencode/decode - structural validation
//   - github.com/bencode-format/go-bencode/ir - decoded document representation
package token
