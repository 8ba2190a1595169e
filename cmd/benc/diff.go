package main

import (
	"fmt"
	"io"

	"github.com/bencode-format/go-bencode/encode"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	d1, err := decodeFile(cc, args[0])
	if err != nil {
		return err
	}
	d2, err := decodeFile(cc, args[1])
	if err != nil {
		return err
	}
	t1 := encode.MustDumpString(d1, d1.Root())
	t2 := encode.MustDumpString(d2, d2.Root())
	if t1 == t2 {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(t1, t2, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	io.WriteString(cc.Out, dmp.DiffPrettyText(diffs))
	io.WriteString(cc.Out, "\n")
	return cli.ExitCodeErr(1)
}
