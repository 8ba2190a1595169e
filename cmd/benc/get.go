package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bencode-format/go-bencode/encode"
	"github.com/bencode-format/go-bencode/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a path and at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	doc, err := decodeFile(cc, file)
	if err != nil {
		return err
	}
	id, err := walkPath(doc, args[0])
	if err != nil {
		return err
	}
	if cfg.Raw {
		cc.Out.Write(doc.Raw(id))
		return nil
	}
	switch doc.Kind(id) {
	case ir.StringKind:
		cc.Out.Write(doc.StringBytes(id))
		fmt.Fprintln(cc.Out)
	case ir.IntegerKind:
		fmt.Fprintln(cc.Out, doc.Int64(id))
	default:
		return encode.Dump(doc, id, cc.Out, cfg.dumpOpts(cc.Out)...)
	}
	return nil
}

// walkPath resolves a dotted path such as "info.name" or
// "announce-list.0.0" against the document: dictionary steps are key
// lookups, list steps are decimal indices.
func walkPath(doc *ir.Doc, path string) (ir.NodeID, error) {
	id := doc.Root()
	if path == "." {
		return id, nil
	}
	for seg := range strings.SplitSeq(path, ".") {
		switch doc.Kind(id) {
		case ir.DictionaryKind:
			v, ok := doc.Lookup(id, []byte(seg))
			if !ok {
				return 0, fmt.Errorf("no key %q at %s", seg, doc.Span(id))
			}
			id = v
		case ir.ListKind:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 {
				return 0, fmt.Errorf("list step %q is not an index", seg)
			}
			if i >= doc.Count(id) {
				return 0, fmt.Errorf("index %d out of range (%d elements)", i, doc.Count(id))
			}
			for c := range doc.Children(id) {
				if i == 0 {
					id = c
					break
				}
				i--
			}
		default:
			return 0, fmt.Errorf("cannot descend %q into a %s", seg, doc.Kind(id))
		}
	}
	return id, nil
}
