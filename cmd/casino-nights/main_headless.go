//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to a YAML tuning file (optional)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed, 0 picks one from the clock")
	flag.Parse()

	if showVersion {
		fmt.Printf("Casino Nights %s (%s) %s\n", version, commit, date)
		return
	}

	_ = configPath
	_ = seed
	fmt.Fprintln(os.Stderr, "Casino Nights requires the raylib client build (cgo enabled).")
	os.Exit(1)
}
