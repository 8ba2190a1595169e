package decode

import (
	"errors"
	"fmt"

	"github.com/bencode-format/go-bencode/token"
)

var (
	ErrTruncatedString = errors.New("truncated string")
	ErrDuplicateKey    = errors.New("duplicate dictionary key")
	ErrUnsortedKey     = errors.New("unsorted dictionary key")
	ErrTrailingData    = errors.New("trailing data")
	ErrDepthLimit      = errors.New("depth limit exceeded")
	ErrElementLimit    = errors.New("element limit exceeded")
)

// DecodeError tags a structural violation with the offset of first
// detection. Lexical failures surface as token.ScanError instead;
// OffsetOf extracts the offset from either.
type DecodeError struct {
	Err error
	Pos token.Pos
}

func NewDecodeError(e error, p *token.Pos) *DecodeError {
	return &DecodeError{Err: e, Pos: *p}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// OffsetOf returns the byte offset at which err was detected, for any
// error produced by Decode.
func OffsetOf(err error) (int, bool) {
	de := &DecodeError{}
	if errors.As(err, &de) {
		return de.Pos.I, true
	}
	se := &token.ScanError{}
	if errors.As(err, &se) {
		return se.Pos.I, true
	}
	return 0, false
}
