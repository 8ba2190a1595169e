package encode

import (
	"io"
	"strconv"

	"github.com/bencode-format/go-bencode/ir"
)

// Encode writes the canonical bencode encoding of the subtree rooted
// at id to w.
func Encode(d *ir.Doc, id ir.NodeID, w io.Writer) error {
	e := &encoder{d: d, w: w}
	e.node(id)
	return e.err
}

// Bytes returns the canonical encoding of the subtree rooted at id.
func Bytes(d *ir.Doc, id ir.NodeID) []byte {
	e := &encoder{d: d}
	buf := make([]byte, 0, d.Span(id).Len)
	e.buf = &buf
	e.node(id)
	return buf
}

type encoder struct {
	d   *ir.Doc
	w   io.Writer
	buf *[]byte
	err error
}

func (e *encoder) write(p []byte) {
	if e.buf != nil {
		*e.buf = append(*e.buf, p...)
		return
	}
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *encoder) writeByte(c byte) {
	e.write([]byte{c})
}

func (e *encoder) node(id ir.NodeID) {
	switch e.d.Kind(id) {
	case ir.IntegerKind:
		var tmp [21]byte
		e.writeByte('i')
		e.write(strconv.AppendInt(tmp[:0], e.d.Int64(id), 10))
		e.writeByte('e')
	case ir.StringKind:
		s := e.d.StringBytes(id)
		var tmp [20]byte
		e.write(strconv.AppendInt(tmp[:0], int64(len(s)), 10))
		e.writeByte(':')
		e.write(s)
	case ir.ListKind:
		e.writeByte('l')
		for c := range e.d.Children(id) {
			e.node(c)
		}
		e.writeByte('e')
	case ir.DictionaryKind:
		e.writeByte('d')
		for k, v := range e.d.Pairs(id) {
			e.node(k)
			e.node(v)
		}
		e.writeByte('e')
	}
}
