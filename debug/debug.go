// Package debug gates diagnostic output on BENC_DEBUG_* environment
// variables so the decoder itself stays a pure function.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("BENC_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
