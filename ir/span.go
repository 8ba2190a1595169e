package ir

import "fmt"

// Span identifies a contiguous byte range within the input buffer.
type Span struct {
	Off int
	Len int
}

func (s Span) End() int {
	return s.Off + s.Len
}

// Slice returns the bytes the span covers in d.
func (s Span) Slice(d []byte) []byte {
	return d[s.Off:s.End()]
}

// Contains reports whether o lies fully within s.
func (s Span) Contains(o Span) bool {
	return o.Off >= s.Off && o.End() <= s.End()
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Off, s.End())
}
