package parser

import (
	"strings"
	"testing"
)

func TestParseExactCommand(t *testing.T) {
	p := New()

	intent := p.Parse("balance")
	if intent.Kind != Command || intent.Verb != "balance" {
		t.Fatalf("expected balance command, got %+v", intent)
	}
	if intent.Confidence != 1.0 {
		t.Fatalf("expected full confidence on exact match, got %f", intent.Confidence)
	}
}

func TestParseAliasAndPrefix(t *testing.T) {
	p := New()

	if intent := p.Parse("bal"); intent.Verb != "balance" {
		t.Fatalf("expected alias bal to resolve to balance, got %+v", intent)
	}
	if intent := p.Parse("repa"); intent.Verb != "repay" {
		t.Fatalf("expected prefix repa to resolve to repay, got %+v", intent)
	}
}

func TestParseGoCarriesRoomArg(t *testing.T) {
	p := New()

	intent := p.Parse("go bank")
	if intent.Kind != Command || intent.Verb != "go" {
		t.Fatalf("expected go command, got %+v", intent)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "bank" {
		t.Fatalf("expected room arg bank, got %v", intent.Args)
	}
}

func TestParseGoWithoutRoomAsksForUsage(t *testing.T) {
	p := New()

	intent := p.Parse("go")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected usage clarify for bare go, got %+v", intent)
	}
	if !strings.Contains(intent.Clarify.Prompt, "Usage:") {
		t.Fatalf("expected usage prompt, got %q", intent.Clarify.Prompt)
	}
}

func TestParseNearMissSuggestsInsteadOfExecuting(t *testing.T) {
	p := New()

	intent := p.Parse("balnce")
	if intent.Kind != Unknown {
		t.Fatalf("near-miss input must not execute, got %+v", intent)
	}
	if intent.Clarify == nil || intent.Clarify.Suggestion != "balance" {
		t.Fatalf("expected balance suggestion, got %+v", intent.Clarify)
	}
}

func TestParseGarbageAndEmptyInput(t *testing.T) {
	p := New()

	if intent := p.Parse("xyzzyplugh"); intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown for garbage, got %+v", intent)
	}
	if intent := p.Parse("   "); intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected clarify for empty input, got %+v", intent)
	}
}

func TestNormaliseInput(t *testing.T) {
	cases := map[string]string{
		"  Go  BANK ":  "go bank",
		"re-pay":       "re pay",
		"quit!":        "quit",
		"\tgo\tslots ": "go slots",
	}
	for in, want := range cases {
		if got := normaliseInput(in); got != want {
			t.Fatalf("normaliseInput(%q) = %q, want %q", in, got, want)
		}
	}
}
