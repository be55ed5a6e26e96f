//go:build ignore

// gen_config_example.go – run with:
//
//	go run scripts/gen_config_example.go
//
// Writes config.example.yaml from the built-in defaults so the file in the
// repo never drifts from internal/game.DefaultConfig.
package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lowkeygames/casino-nights/internal/game"
)

func main() {
	data, err := yaml.Marshal(game.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	header := []byte("# Casino Nights tuning. Every key is optional; missing keys keep their defaults.\n# Pass with: casino-nights -config config.example.yaml\n")
	if err := os.WriteFile("config.example.yaml", append(header, data...), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote config.example.yaml")
}
