package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, file := range args {
		_, err := decodeFile(cc, file)
		switch {
		case err != nil:
			bad++
			if !cfg.Quiet {
				fmt.Fprintln(os.Stderr, err)
			}
		case !cfg.Quiet:
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
