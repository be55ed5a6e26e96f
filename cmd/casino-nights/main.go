//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lowkeygames/casino-nights/internal/gui"
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

	app := gui.NewApp(gui.AppConfig{
		Version:    version,
		Commit:     commit,
		BuildDate:  date,
		ConfigPath: configPath,
		Seed:       seed,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
