package safety

import "strings"

// ParserKind selects how a CLIConfig locates the "action" token in a
// multi-level CLI invocation.
type ParserKind int

const (
	// ParserAWS: aws [--flag ...] <service> <action>, with a special case
	// for "aws help".
	ParserAWS ParserKind = iota
	// ParserFirstToken: <cli> <action> [args...].
	ParserFirstToken
	// ParserSecondToken: <cli> <group> <action> [args...].
	ParserSecondToken
	// ParserVariableDepth: <cli> <group> [subgroup...] <action>, where the
	// action's depth varies by group/subgroup.
	ParserVariableDepth
)

// CLIConfig declares how one multi-level CLI tool is evaluated. Only the
// fields relevant to Parser are meaningful - keeping depth fields on a
// shared struct (rather than a variant per parser kind) mirrors the
// source's original heterogeneous config shape, called out in spec.md §9 as
// something a strongly-typed rewrite should make unrepresentable; this
// codebase stays closer to the source here because CLIConfigs is a plain
// data table assembled once at init and never mutated, so the extra
// zero-value fields on a ParserFirstToken entry cost nothing and the
// per-parser variant would only move the complexity into a larger type
// switch in the config table itself.
type CLIConfig struct {
	SafeActions  map[string]bool
	SafePrefixes []string
	Parser       ParserKind

	// FlagsWithArg names flags that consume the following token, so both
	// positions are skipped when locating positional arguments.
	FlagsWithArg map[string]bool

	// ActionDepth, ServiceDepths, and SubserviceDepths2/3 are used only by
	// ParserVariableDepth.
	ActionDepth      int
	ServiceDepths    map[string]int
	SubserviceDepths2 map[[2]string]int
	SubserviceDepths3 map[[3]string]int
}

// awsFlagsWithArg are the common top-level AWS CLI flags that take a value,
// consulted by ParserAWS so "aws --profile prod --region us-west-2 lambda
// list-functions" still locates "lambda"/"list-functions" correctly.
var awsFlagsWithArg = map[string]bool{
	"--profile": true, "--region": true, "--output": true,
	"--endpoint-url": true, "--query": true, "--color": true,
	"--cli-connect-timeout": true, "--cli-read-timeout": true,
	"--ca-bundle": true,
}

// gitFlagsWithArg covers git's global flags that take a separate argument
// token, so the CLI_CONFIGS first_token parser still lands on the real
// subcommand for invocations like "git -C /some/path status".
var gitFlagsWithArg = map[string]bool{
	"-C": true, "-c": true, "--work-tree": true, "--namespace": true,
}

// CLIConfigs is the per-tool structured configuration table (spec §4.6).
var CLIConfigs = map[string]CLIConfig{
	"aws": {
		SafeActions:  map[string]bool{"ls": true},
		SafePrefixes: []string{"describe-", "get-", "head-", "list-"},
		Parser:       ParserAWS,
		FlagsWithArg: awsFlagsWithArg,
	},
	"az": {
		SafeActions:  map[string]bool{"list": true, "show": true},
		SafePrefixes: []string{"get-", "list-"},
		Parser:       ParserVariableDepth,
		ActionDepth:  1, // az <group> <action>
		ServiceDepths: map[string]int{
			"network": 2, "storage": 2, "monitor": 2, "keyvault": 2,
			"sql": 2, "vm": 1,
		},
		SubserviceDepths2: map[[2]string]int{
			{"cognitiveservices", "account"}: 3,
		},
	},
	"gcloud": {
		SafeActions:  map[string]bool{"list": true, "describe": true},
		SafePrefixes: []string{"get-", "list-"},
		Parser:       ParserVariableDepth,
		ActionDepth:  1, // gcloud <group> <action>
		ServiceDepths: map[string]int{
			"compute": 2, "container": 2, "sql": 2, "functions": 2,
		},
	},
	"gh": {
		SafeActions: map[string]bool{
			"checks": true, "diff": true, "list": true, "search": true,
			"status": true, "view": true,
		},
		Parser: ParserSecondToken,
	},
	"docker": {
		SafeActions: map[string]bool{
			"diff": true, "events": true, "history": true, "images": true,
			"inspect": true, "logs": true, "port": true, "ps": true,
			"stats": true, "top": true, "version": true,
		},
		Parser: ParserFirstToken,
	},
	"brew": {
		SafeActions: map[string]bool{
			"config": true, "deps": true, "desc": true, "doctor": true,
			"info": true, "leaves": true, "list": true, "options": true,
			"outdated": true, "search": true, "uses": true,
		},
		Parser: ParserFirstToken,
	},
	"git": {
		SafeActions: map[string]bool{
			"blame": true, "branch": true, "cat-file": true,
			"check-ignore": true, "cherry": true, "describe": true,
			"diff": true, "fetch": true, "for-each-ref": true, "grep": true,
			"log": true, "ls-files": true, "ls-tree": true,
			"merge-base": true, "name-rev": true, "reflog": true,
			"rev-list": true, "rev-parse": true, "shortlog": true,
			"show": true, "status": true, "tag": true,
		},
		Parser:       ParserFirstToken,
		FlagsWithArg: gitFlagsWithArg,
	},
	"kubectl": {
		SafeActions: map[string]bool{
			"api-resources": true, "api-versions": true,
			"cluster-info": true, "describe": true, "explain": true,
			"get": true, "logs": true, "top": true, "version": true,
		},
		Parser: ParserFirstToken,
	},
}

// extractAction locates the action token for a CLI invocation's tail
// (everything after the tool name), per the Parser kind.
func extractAction(cfg CLIConfig, tail []string) (action string, ok bool) {
	switch cfg.Parser {
	case ParserAWS:
		return parseAWSAction(tail, cfg.FlagsWithArg)
	case ParserFirstToken:
		return nthPositional(tail, cfg.FlagsWithArg, 1)
	case ParserSecondToken:
		return nthPositional(tail, cfg.FlagsWithArg, 2)
	case ParserVariableDepth:
		return parseVariableDepthAction(tail, cfg)
	default:
		return "", false
	}
}

func parseAWSAction(tail []string, flagsWithArg map[string]bool) (string, bool) {
	i := skipFlags(tail, flagsWithArg)
	if i >= len(tail) {
		return "", false
	}
	if tail[i] == "help" {
		return "help", true
	}
	if i+1 >= len(tail) {
		return "", false
	}
	return tail[i+1], true
}

func parseVariableDepthAction(tail []string, cfg CLIConfig) (string, bool) {
	i := skipFlags(tail, cfg.FlagsWithArg)
	remaining := tail[i:]
	if len(remaining) == 0 {
		return "", false
	}
	service := remaining[0]
	next1, next2 := "", ""
	if len(remaining) > 1 {
		next1 = remaining[1]
	}
	if len(remaining) > 2 {
		next2 = remaining[2]
	}

	depth := cfg.ActionDepth
	if d, ok := cfg.SubserviceDepths3[[3]string{service, next1, next2}]; ok {
		depth = d
	} else if d, ok := cfg.SubserviceDepths2[[2]string{service, next1}]; ok {
		depth = d
	} else if d, ok := cfg.ServiceDepths[service]; ok {
		depth = d
	}

	if depth < 0 || depth >= len(remaining) {
		return "", false
	}
	return remaining[depth], true
}

// skipFlags returns the index of the first positional token in tail,
// skipping leading "-" flags (and their argument, for flags in
// flagsWithArg).
func skipFlags(tail []string, flagsWithArg map[string]bool) int {
	i := 0
	for i < len(tail) && strings.HasPrefix(tail[i], "-") {
		if flagsWithArg[tail[i]] {
			i += 2
		} else {
			i++
		}
	}
	return i
}

// nthPositional returns the n-th (1-based) non-flag token in tail,
// skipping flags (and their argument, for flags in flagsWithArg) wherever
// they appear.
func nthPositional(tail []string, flagsWithArg map[string]bool, n int) (string, bool) {
	count := 0
	i := 0
	for i < len(tail) {
		if strings.HasPrefix(tail[i], "-") {
			if flagsWithArg[tail[i]] {
				i += 2
			} else {
				i++
			}
			continue
		}
		count++
		if count == n {
			return tail[i], true
		}
		i++
	}
	return "", false
}

// evaluateCLI implements classifier rule §4.3 step 9: resolve aliases, look
// up the structured CLI config, extract the action, and check it against
// the whitelist.
func evaluateCLI(tokens []string) bool {
	name := tokens[0]
	if alias, ok := CLIAliases[name]; ok {
		name = alias
	}
	cfg, ok := CLIConfigs[name]
	if !ok {
		return false
	}
	action, ok := extractAction(cfg, tokens[1:])
	if !ok || action == "" {
		return false
	}
	if cfg.SafeActions[action] {
		return true
	}
	for _, prefix := range cfg.SafePrefixes {
		if strings.HasPrefix(action, prefix) {
			return true
		}
	}
	return false
}
