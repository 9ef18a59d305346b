// Package debug provides env-gated debug logging for the dx tools.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Flat     bool
	Decode   bool
	Batch    bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Flat = boolEnv("DX_DEBUG_FLAT")
	d.Decode = boolEnv("DX_DEBUG_DECODE")
	d.Batch = boolEnv("DX_DEBUG_BATCH")
	d.Validate = boolEnv("DX_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Flat() bool {
	return d.Flat
}
func Decode() bool {
	return d.Decode
}
func Batch() bool {
	return d.Batch
}
func Validate() bool {
	return d.Validate
}
