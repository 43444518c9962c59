// Command boxlayout lays out YAML box trees and prints or draws the result.
//
// Usage:
//
//	boxlayout layout [--format tree|yaml] FILE...   Print computed layout
//	boxlayout render [-o out.png] FILE              Draw computed layout as PNG
//	boxlayout version                               Print version information
//
// Settings come from flags, BOXLAYOUT_* environment variables and
// ./boxlayout.yaml (or --config), in that order.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
