package token

import (
	"bytes"
	"fmt"
	"math"
)

// Scanner is a cursor over an immutable bencode buffer. It recognizes
// the lexical shapes of the format (digit runs, delimiters, type
// prefixes) and reports offset-tagged failures. It owns no byte data;
// every slice it returns aliases the input.
type Scanner struct {
	doc *PosDoc
	i   int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{doc: NewPosDoc(d)}
}

// Doc returns the position document over the scanned buffer, for
// tagging errors detected above the lexical layer.
func (s *Scanner) Doc() *PosDoc {
	return s.doc
}

func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) Len() int {
	return len(s.doc.d)
}

func (s *Scanner) Remaining() int {
	return len(s.doc.d) - s.i
}

// Peek returns the byte at the cursor without advancing.
func (s *Scanner) Peek() (byte, error) {
	if s.i >= len(s.doc.d) {
		return 0, NewScanError(ErrUnexpectedEOF, s.doc.End())
	}
	return s.doc.d[s.i], nil
}

// Expect consumes one byte, failing if it is not c.
func (s *Scanner) Expect(c byte) error {
	b, err := s.Peek()
	if err != nil {
		return err
	}
	if b != c {
		return NewScanError(fmt.Errorf("%w: got %q, want %q", ErrUnexpectedToken, b, c),
			s.doc.Pos(s.i))
	}
	s.i++
	return nil
}

// Advance moves the cursor forward n bytes. The caller must have
// established that n bytes remain.
func (s *Scanner) Advance(n int) {
	if s.i+n > len(s.doc.d) {
		panic("token: advance past end of buffer")
	}
	s.i += n
}

// DigitRun is a maximal run of ASCII digits together with its parsed
// magnitude. Digits aliases the scanned buffer.
type DigitRun struct {
	Off    int
	Digits []byte
	Mag    uint64
}

// ReadDecimalRun consumes a maximal run of ASCII digits at the cursor.
// Zero digits consumed is ErrInvalidDigit; a magnitude beyond uint64 is
// ErrIntegerOverflow. Callers apply range and minimality rules on top.
func (s *Scanner) ReadDecimalRun() (DigitRun, error) {
	d := s.doc.d
	start := s.i
	j := start
	var mag uint64
	for j < len(d) && d[j] >= '0' && d[j] <= '9' {
		dig := uint64(d[j] - '0')
		if mag > (math.MaxUint64-dig)/10 {
			return DigitRun{}, NewScanError(ErrIntegerOverflow, s.doc.Pos(start))
		}
		mag = mag*10 + dig
		j++
	}
	if j == start {
		if start >= len(d) {
			return DigitRun{}, NewScanError(ErrUnexpectedEOF, s.doc.End())
		}
		return DigitRun{}, NewScanError(ErrInvalidDigit, s.doc.Pos(start))
	}
	s.i = j
	return DigitRun{Off: start, Digits: d[start:j], Mag: mag}, nil
}

// Find returns the absolute offset of the next occurrence of c at or
// after the cursor, without advancing. Absence before the end of the
// buffer is ErrUnexpectedEOF.
func (s *Scanner) Find(c byte) (int, error) {
	j := bytes.IndexByte(s.doc.d[s.i:], c)
	if j < 0 {
		return 0, NewScanError(ErrUnexpectedEOF, s.doc.End())
	}
	return s.i + j, nil
}
