package parser

type IntentKind int

const (
	Command IntentKind = iota
	Unknown
)

// Intent is the resolved form of one console line.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

// ClarifyQuestion carries a "did you mean" prompt for near-miss input.
type ClarifyQuestion struct {
	Prompt     string
	Suggestion string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	Usage     string
}
