package encode

import (
	"bytes"
	"strings"

	"github.com/bencode-format/go-bencode/ir"
)

func MustString(d *ir.Doc, id ir.NodeID) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, id, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustDumpString is MustString for the human-readable form, without
// colors. Handy in tests and debug output.
func MustDumpString(d *ir.Doc, id ir.NodeID) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(d, id, buf); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n")
}
