package token

import (
	"fmt"
	"strconv"
)

// PosDoc associates offsets with the document they index into.
// Bencode is a binary format, so unlike line-oriented formats there is
// no line/column geometry; a position is an offset plus enough
// surrounding bytes to identify it in an error message.
type PosDoc struct {
	d []byte
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) Bytes() []byte {
	return p.d
}

func (p *PosDoc) Len() int {
	return len(p.d)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

func (p *PosDoc) End() *Pos {
	return &Pos{I: len(p.d), D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
}
