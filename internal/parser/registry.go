package parser

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

type commandAlias struct {
	canonical string
	alias     string
}

type Registry struct {
	commands map[string]CommandDef
	aliases  []commandAlias
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c
	r.aliases = append(r.aliases, commandAlias{canonical: c.Canonical, alias: c.Canonical})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.aliases = append(r.aliases, commandAlias{canonical: c.Canonical, alias: n})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[canonical]
	return cmd, ok
}

func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}

type candidate struct {
	Canonical string
	Score     float64
}

// matchVerb resolves the first token against the registry: exact or alias
// hit first, then unambiguous prefix, then a levenshtein pass for near
// misses ("balnce" -> "balance").
func (r *Registry) matchVerb(verb string) (candidate, []candidate) {
	if verb == "" {
		return candidate{}, nil
	}
	cands := make([]candidate, 0, len(r.aliases))
	for _, entry := range r.aliases {
		switch {
		case verb == entry.alias:
			score := 1.0
			if entry.alias != entry.canonical {
				score = 0.97
			}
			cands = append(cands, candidate{Canonical: entry.canonical, Score: score})
		case len(verb) >= 2 && len(verb) < len(entry.alias) && entry.alias[:len(verb)] == verb:
			cands = append(cands, candidate{Canonical: entry.canonical, Score: 0.9})
		case len(verb) >= 3:
			dist := levenshtein.ComputeDistance(verb, entry.alias)
			if dist > levenshteinLimit(len(entry.alias)) {
				continue
			}
			cands = append(cands, candidate{Canonical: entry.canonical, Score: 0.72 - 0.08*float64(dist)})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})
	if len(cands) == 0 {
		return candidate{}, nil
	}
	best := cands[0]
	alts := make([]candidate, 0, 2)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 2 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// DefaultRegistry holds the pit-boss console commands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, MinArgs: 0, MaxArgs: 0, Usage: "help"},
		{Canonical: "balance", Aliases: []string{"bal", "money", "wallet"}, MinArgs: 0, MaxArgs: 0, Usage: "balance"},
		{Canonical: "loan", Aliases: []string{"debt"}, MinArgs: 0, MaxArgs: 0, Usage: "loan"},
		{Canonical: "repay", Aliases: []string{"payback", "pay"}, MinArgs: 0, MaxArgs: 0, Usage: "repay"},
		{Canonical: "go", Aliases: []string{"goto", "walk", "enter"}, MinArgs: 1, MaxArgs: 1, Usage: "go <floor|bank|roulette|blackjack|slots|wardrobe>"},
		{Canonical: "quit", Aliases: []string{"exit"}, MinArgs: 0, MaxArgs: 0, Usage: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
