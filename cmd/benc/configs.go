package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bencode-format/go-bencode/debug"
	"github.com/bencode-format/go-bencode/decode"
	"github.com/bencode-format/go-bencode/encode"
	"github.com/bencode-format/go-bencode/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='dump with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []encode.DumpOption {
	res := []encode.DumpOption{}
	if cfg.Color {
		res = append(res, encode.DumpColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.DumpColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='no per-file output, exit status only'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print the exact encoding bytes of the node'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

// decodeFile reads and decodes one bencode document from file, "-"
// meaning cc.In. Decode failures surface the error kind and byte
// offset verbatim.
func decodeFile(cc *cli.Context, file string) (*ir.Doc, error) {
	var (
		r   io.Reader
		err error
	)
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	doc, err := decode.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if debug.Decode() {
		fmt.Fprintf(os.Stderr, "%s: %d bytes, %d nodes\n", file, len(in), doc.NumNodes())
	}
	return doc, nil
}
