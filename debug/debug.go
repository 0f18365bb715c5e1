// Package debug provides env-var gated tracing for pointer resolution and
// patch application. Set JP_DEBUG_PATCH=1 (etc.) to enable a category.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Fetch   bool
	Patch   bool
	Patches bool
}

var d *debug

func init() {
	d = &debug{}
	d.Fetch = boolEnv("JP_DEBUG_FETCH")
	d.Patch = boolEnv("JP_DEBUG_PATCH")
	d.Patches = boolEnv("JP_DEBUG_PATCHES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Fetch() bool {
	return d.Fetch
}
func Patch() bool {
	return d.Patch
}
func Patches() bool {
	return d.Patches
}
