package decode

import (
	"bytes"
	"fmt"
	"math"

	"github.com/bencode-format/go-bencode/ir"
	"github.com/bencode-format/go-bencode/token"
)

// Decode validates d as a canonical bencode document and returns its
// arena representation. The returned Doc borrows d; d must not be
// mutated while the Doc is in use.
func Decode(d []byte, opts ...Option) (*ir.Doc, error) {
	o := &decodeOpts{
		maxDepth:    DefaultMaxDepth,
		maxElements: DefaultMaxElements,
	}
	for _, f := range opts {
		f(o)
	}
	dec := &decoder{
		sc:   token.NewScanner(d),
		b:    ir.NewBuilder(d),
		opts: o,
	}
	if _, err := dec.value(0); err != nil {
		return nil, err
	}
	if dec.sc.Remaining() > 0 {
		return nil, dec.errAt(ErrTrailingData, dec.sc.Offset())
	}
	return dec.b.Doc(), nil
}

type decoder struct {
	sc   *token.Scanner
	b    *ir.Builder
	opts *decodeOpts
}

func (dec *decoder) errAt(e error, off int) error {
	return NewDecodeError(e, dec.sc.Doc().Pos(off))
}

// room fails with ErrElementLimit if pushing one more node would
// exceed the configured bound.
func (dec *decoder) room() error {
	if dec.b.Len() >= dec.opts.maxElements {
		return dec.errAt(ErrElementLimit, dec.sc.Offset())
	}
	return nil
}

// value parses one value of any kind, dispatching on the byte at the
// cursor. depth is the number of enclosing containers.
func (dec *decoder) value(depth int) (ir.NodeID, error) {
	c, err := dec.sc.Peek()
	if err != nil {
		return 0, err
	}
	switch {
	case c >= '0' && c <= '9':
		id, _, err := dec.str()
		return id, err
	case c == 'i':
		return dec.integer()
	case c == 'l':
		return dec.container(ir.ListKind, depth)
	case c == 'd':
		return dec.container(ir.DictionaryKind, depth)
	default:
		return 0, token.UnexpectedErr(fmt.Sprintf("%q", c),
			dec.sc.Doc().Pos(dec.sc.Offset()))
	}
}

// maxNegMag is the magnitude of math.MinInt64.
const maxNegMag = uint64(math.MaxInt64) + 1

// integer parses "i" sign? digits "e" with the canonical rules: no
// leading zero unless the value is exactly zero, and zero is never
// signed.
func (dec *decoder) integer() (ir.NodeID, error) {
	start := dec.sc.Offset()
	dec.sc.Advance(1) // 'i'
	numOff := dec.sc.Offset()
	neg := false
	if c, err := dec.sc.Peek(); err == nil && c == '-' {
		dec.sc.Advance(1)
		neg = true
	}
	run, err := dec.sc.ReadDecimalRun()
	if err != nil {
		return 0, err
	}
	if len(run.Digits) > 1 && run.Digits[0] == '0' {
		return 0, NewDecodeError(token.ErrLeadingZero, dec.sc.Doc().Pos(run.Off))
	}
	if neg && run.Mag == 0 {
		return 0, NewDecodeError(token.ErrNegativeZero, dec.sc.Doc().Pos(run.Off))
	}
	if run.Mag > math.MaxInt64 && !(neg && run.Mag == maxNegMag) {
		return 0, NewDecodeError(token.ErrIntegerOverflow, dec.sc.Doc().Pos(run.Off))
	}
	numEnd := dec.sc.Offset()
	if err := dec.sc.Expect('e'); err != nil {
		return 0, err
	}
	if err := dec.room(); err != nil {
		return 0, err
	}
	span := ir.Span{Off: start, Len: dec.sc.Offset() - start}
	num := ir.Span{Off: numOff, Len: numEnd - numOff}
	return dec.b.PushInteger(span, num), nil
}

// str parses length ":" bytes. The length prefix follows the same
// minimality rule as integer digits and has no sign. The returned span
// is the content payload.
func (dec *decoder) str() (ir.NodeID, ir.Span, error) {
	start := dec.sc.Offset()
	// the colon can be far from the cursor only in pathological
	// inputs, but locate it with the fast byte search anyway.
	if _, err := dec.sc.Find(':'); err != nil {
		return 0, ir.Span{}, err
	}
	run, err := dec.sc.ReadDecimalRun()
	if err != nil {
		return 0, ir.Span{}, err
	}
	if len(run.Digits) > 1 && run.Digits[0] == '0' {
		return 0, ir.Span{}, NewDecodeError(token.ErrLeadingZero, dec.sc.Doc().Pos(run.Off))
	}
	if err := dec.sc.Expect(':'); err != nil {
		return 0, ir.Span{}, err
	}
	if run.Mag > uint64(dec.sc.Remaining()) {
		return 0, ir.Span{}, dec.errAt(ErrTruncatedString, start)
	}
	if err := dec.room(); err != nil {
		return 0, ir.Span{}, err
	}
	payload := ir.Span{Off: dec.sc.Offset(), Len: int(run.Mag)}
	dec.sc.Advance(payload.Len)
	span := ir.Span{Off: start, Len: dec.sc.Offset() - start}
	return dec.b.PushString(span, payload), payload, nil
}

// container parses a list or dictionary body up to its terminating
// 'e'. Dictionary bodies additionally require string keys in strictly
// ascending byte order with no duplicates.
func (dec *decoder) container(kind ir.Kind, depth int) (ir.NodeID, error) {
	start := dec.sc.Offset()
	if depth+1 > dec.opts.maxDepth {
		return 0, dec.errAt(ErrDepthLimit, start)
	}
	if err := dec.room(); err != nil {
		return 0, err
	}
	dec.sc.Advance(1) // 'l' or 'd'
	id := dec.b.PushContainer(kind, start)
	count := 0
	var prevKey []byte
	for {
		c, err := dec.sc.Peek()
		if err != nil {
			return 0, err // missing terminator
		}
		if c == 'e' {
			dec.sc.Advance(1)
			break
		}
		if kind == ir.DictionaryKind {
			if c < '0' || c > '9' {
				return 0, token.UnexpectedErr(
					fmt.Sprintf("%q, dictionary key must be a string", c),
					dec.sc.Doc().Pos(dec.sc.Offset()))
			}
			keyOff := dec.sc.Offset()
			_, pay, err := dec.str()
			if err != nil {
				return 0, err
			}
			key := pay.Slice(dec.sc.Doc().Bytes())
			if prevKey != nil {
				switch cmp := bytes.Compare(key, prevKey); {
				case cmp == 0:
					return 0, dec.errAt(ErrDuplicateKey, keyOff)
				case cmp < 0:
					return 0, dec.errAt(ErrUnsortedKey, keyOff)
				}
			}
			prevKey = key
		}
		if _, err := dec.value(depth + 1); err != nil {
			return 0, err
		}
		count++
	}
	dec.b.Seal(id, dec.sc.Offset(), count)
	return id, nil
}
