package parser

import "fmt"

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

// Parse maps one console line onto an Intent. Near-miss verbs come back as
// Unknown with a clarify suggestion rather than guessing on low confidence.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	tokens := tokenise(intent.Normalised)
	if len(tokens) == 0 {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Try: help"}
		return intent
	}

	best, _ := p.registry.matchVerb(tokens[0])
	if best.Canonical == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("Unknown command %q. Try: help", tokens[0])}
		return intent
	}
	if best.Score < 0.9 {
		// Fuzzy-only hit: suggest instead of executing.
		intent.Clarify = &ClarifyQuestion{
			Prompt:     fmt.Sprintf("Unknown command %q. Did you mean %q?", tokens[0], best.Canonical),
			Suggestion: best.Canonical,
		}
		return intent
	}

	cmd, _ := p.registry.command(best.Canonical)
	args := tokens[1:]
	if len(args) < cmd.MinArgs || len(args) > cmd.MaxArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: "Usage: " + cmd.Usage}
		return intent
	}

	intent.Kind = Command
	intent.Verb = cmd.Canonical
	intent.Args = args
	intent.Confidence = best.Score
	return intent
}
