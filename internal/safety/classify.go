package safety

import "path/filepath"

// maxRecursionDepth bounds the custom checks that recursively classify an
// inner command (bash -c, xargs). The spec itself doesn't name a limit;
// this guards against pathological or adversarial nesting the way the
// teacher's detector caps its own recursive AnalyzeCommand walk.
const maxRecursionDepth = 20

// Classify decides whether a single already-extracted, fully static simple
// command is safe, per the ordered rule cascade (spec §4.3). Callers with a
// non-static SimpleCommand must not call Classify - dynamic content is
// rejected before classification is ever attempted.
func Classify(tokens []string) bool {
	return classify(tokens, 0)
}

func classify(tokens []string, depth int) bool {
	if depth > maxRecursionDepth {
		return false
	}

	tokens = stripWrappers(tokens)
	if len(tokens) == 0 {
		return false
	}

	// 2. --help is safe regardless of which tool it's attached to.
	if containsHelpFlag(tokens) {
		return true
	}

	// 3. Unconditionally safe bare command names.
	if SafeCommands[tokens[0]] {
		return true
	}

	// 4. Safe scripts/tools, matched on basename so any path to them
	// qualifies (e.g. /opt/homebrew/bin/rg).
	base := filepath.Base(tokens[0])
	if SafeScripts[base] {
		return true
	}

	// 5. curl-compatible wrappers are evaluated as curl itself.
	if CurlWrappers[base] {
		return checkCurl(append([]string{"curl"}, tokens[1:]...))
	}

	// 6. Literal multi-token prefixes.
	if matchesPrefixCommand(tokens) {
		return true
	}

	// 7. Per-tool custom validators.
	if check, ok := CustomChecks[tokens[0]]; ok {
		return check(tokens, depth)
	}

	// 8. Compound validators, keyed by a multi-token prefix.
	for _, cc := range CompoundChecks {
		if hasLiteralPrefix(tokens, cc.prefix) {
			return cc.check(tokens)
		}
	}

	// 9. Structured CLI configuration, after alias resolution.
	if evaluateCLI(tokens) {
		return true
	}

	// 10. Nothing fired.
	return false
}

func containsHelpFlag(tokens []string) bool {
	for _, t := range tokens[1:] {
		if t == "--help" {
			return true
		}
	}
	return false
}

func matchesPrefixCommand(tokens []string) bool {
	for _, prefix := range PrefixCommands {
		if hasLiteralPrefix(tokens, prefix) {
			return true
		}
	}
	return false
}
