package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bencode-format/go-bencode/ir"
)

// Dump writes an indented, human-readable rendering of the subtree
// rooted at id. String content is shown Go-quoted, so binary payloads
// (hashes, piece tables) stay printable.
func Dump(d *ir.Doc, id ir.NodeID, w io.Writer, opts ...DumpOption) error {
	ds := &dumpState{d: d, w: w, indent: 2}
	for _, o := range opts {
		o(ds)
	}
	ds.node(id, 0)
	if ds.err == nil {
		ds.print("\n")
	}
	return ds.err
}

type dumpState struct {
	d      *ir.Doc
	w      io.Writer
	colors *Colors
	indent int
	err    error
}

func (ds *dumpState) print(s string) {
	if ds.err != nil {
		return
	}
	_, ds.err = io.WriteString(ds.w, s)
}

func (ds *dumpState) pad(depth int) string {
	return strings.Repeat(" ", depth*ds.indent)
}

func (ds *dumpState) node(id ir.NodeID, depth int) {
	d := ds.d
	switch k := d.Kind(id); k {
	case ir.IntegerKind:
		ds.print(ds.colors.color(Colorable{Kind: k, Attr: ValueColor},
			strconv.FormatInt(d.Int64(id), 10)))
	case ir.StringKind:
		ds.print(ds.colors.color(Colorable{Kind: k, Attr: ValueColor},
			strconv.Quote(string(d.StringBytes(id)))))
	case ir.ListKind:
		if d.Count(id) == 0 {
			ds.print(ds.sep(k, "[]"))
			return
		}
		ds.print(ds.sep(k, "["))
		i := 0
		for c := range d.Children(id) {
			if i > 0 {
				ds.print(ds.sep(k, ","))
			}
			ds.print("\n" + ds.pad(depth+1))
			ds.node(c, depth+1)
			i++
		}
		ds.print("\n" + ds.pad(depth))
		ds.print(ds.sep(k, "]"))
	case ir.DictionaryKind:
		if d.Count(id) == 0 {
			ds.print(ds.sep(k, "{}"))
			return
		}
		ds.print(ds.sep(k, "{"))
		i := 0
		for kid, vid := range d.Pairs(id) {
			if i > 0 {
				ds.print(ds.sep(k, ","))
			}
			ds.print("\n" + ds.pad(depth+1))
			ds.print(ds.colors.color(Colorable{Kind: k, Attr: FieldColor},
				strconv.Quote(string(d.StringBytes(kid)))))
			ds.print(ds.sep(k, ": "))
			ds.node(vid, depth+1)
			i++
		}
		ds.print("\n" + ds.pad(depth))
		ds.print(ds.sep(k, "}"))
	default:
		ds.err = fmt.Errorf("unknown kind %d", int(k))
	}
}

func (ds *dumpState) sep(k ir.Kind, s string) string {
	return ds.colors.color(Colorable{Kind: k, Attr: SepColor}, s)
}
