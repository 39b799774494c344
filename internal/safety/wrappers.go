package safety

import "strings"

// WrapperPolicy is the strategy for consuming a wrapper's own option block
// before the inner command begins.
type WrapperPolicy int

const (
	// dropN drops exactly N tokens unconditionally.
	dropN WrapperPolicy = iota
	// dropFlagsAndAssignments drops tokens while they start with "-" or
	// look like an env-style VAR=value assignment.
	dropFlagsAndAssignments
	// dropNiceFlags drops a flag token and its following argument, for as
	// long as the next token starts with "-".
	dropNiceFlags
)

// wrapperRule describes one wrapper: the literal token prefix that must
// match before it fires, and the policy for skipping its own option block.
type wrapperRule struct {
	prefix []string
	policy WrapperPolicy
	n      int
}

// Wrappers maps a command name to its stripping rule. uv requires the
// literal prefix "uv run" - bare "uv" or "uv sync" must not unwrap. "time"
// has no entry here: in parsed input it's consumed structurally by
// *syntax.TimeClause before a SimpleCommand is ever built (see extract.go).
// A "time" that leads a token list classified without reparsing (the
// command after xargs or env) is not stripped, and that command is not
// classified as safe.
var Wrappers = map[string]wrapperRule{
	"nice":    {prefix: []string{"nice"}, policy: dropNiceFlags},
	"timeout": {prefix: []string{"timeout"}, policy: dropN, n: 1},
	"env":     {prefix: []string{"env"}, policy: dropFlagsAndAssignments},
	"uv":      {prefix: []string{"uv", "run"}, policy: dropFlagsAndAssignments},
}

// stripWrappers repeatedly strips leading wrappers from tokens, consuming
// each wrapper's own option block, until no wrapper prefix matches the
// remaining leading tokens. It returns the possibly-empty remainder.
func stripWrappers(tokens []string) []string {
	for len(tokens) > 0 {
		rule, ok := Wrappers[tokens[0]]
		if !ok {
			break
		}
		if !hasLiteralPrefix(tokens, rule.prefix) {
			break
		}
		tokens = tokens[len(rule.prefix):]

		switch rule.policy {
		case dropN:
			if len(tokens) < rule.n {
				tokens = nil
			} else {
				tokens = tokens[rule.n:]
			}
		case dropFlagsAndAssignments:
			for len(tokens) > 0 && looksLikeFlagOrAssignment(tokens[0]) {
				tokens = tokens[1:]
			}
		case dropNiceFlags:
			for len(tokens) > 0 && strings.HasPrefix(tokens[0], "-") {
				if len(tokens) < 2 {
					tokens = nil
					break
				}
				tokens = tokens[2:]
			}
		}
	}
	return tokens
}

func looksLikeFlagOrAssignment(tok string) bool {
	if strings.HasPrefix(tok, "-") {
		return true
	}
	if eq := strings.IndexByte(tok, '='); eq > 0 {
		// env-style VAR=value: everything before "=" looks like an
		// identifier.
		name := tok[:eq]
		return isIdentifier(name)
	}
	return false
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func hasLiteralPrefix(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}
