package main

import (
	"io"

	"github.com/bencode-format/go-bencode/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		doc, err := decodeFile(cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			io.WriteString(cc.Out, "\n")
		}
		opts := cfg.dumpOpts(cc.Out)
		if err := encode.Dump(doc, doc.Root(), cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
