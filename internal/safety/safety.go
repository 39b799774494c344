package safety

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Evaluate runs the full pipeline - preprocess, parse, extract, classify,
// aggregate - over a raw bash command string and returns a Decision.
//
// This is the only exported entry point most callers need; cmd/safety-hook
// wraps it in the PreToolUse JSON envelope.
func Evaluate(command string) Result {
	if strings.TrimSpace(command) == "" {
		return Result{Decision: Unknown, Reason: "missing or empty command"}
	}
	if evaluateScript(command, 0) {
		return Result{Decision: Safe, Reason: "every extracted command matched a safe rule"}
	}
	return Result{Decision: Unknown, Reason: "could not prove every extracted command safe"}
}

// evaluateScript parses a bash script fragment and reports whether every
// simple command it contains classifies as safe. It has no short-circuit
// semantics of its own for && / || / ; - those are flattened by the
// extractor into one flat list, and every member of that list must be safe
// (spec §4.2's "relational structure intentionally flattened" design).
//
// depth threads the recursion guard through bash -c / xargs, both of which
// call back into this same function or into classify with depth+1.
func evaluateScript(script string, depth int) bool {
	pre := Preprocess(script)
	file, err := syntax.NewParser().Parse(strings.NewReader(pre), "")
	if err != nil {
		return false
	}

	cmds, ok := ExtractCommands(file)
	if !ok {
		return false
	}

	for _, c := range cmds {
		if !c.Static {
			return false
		}
		if len(c.Tokens) == 0 {
			continue // empty sequences are discarded, not treated as a failure
		}
		if !classify(c.Tokens, depth) {
			return false
		}
	}
	return true
}
