package safety

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// SimpleCommand is the ordered sequence of word tokens of one command node
// in source order, with assignments and redirects stripped. Static is false
// whenever any token could not be resolved to literal text (a variable
// expansion, command substitution, arithmetic expansion, process
// substitution, or extended glob); such a command can never be proven safe, so the
// classifier rejects it before consulting any rule.
type SimpleCommand struct {
	Tokens []string
	Static bool
}

// safeRedirectTargets are the output-redirect destinations the extractor
// treats as having no observable filesystem effect.
var safeRedirectTargets = map[string]bool{
	"/dev/null": true,
}

// writingRedirectOps are the redirect operators that open their target for
// writing. ClbOut (">|") and AppAll ("&>>") are writing forms of the ">" and
// "&>" operators the spec names explicitly; they are included here for the
// same reason the spec lists "..." after its enumerated set.
var writingRedirectOps = map[syntax.RedirOperator]bool{
	syntax.RdrOut: true, // >
	syntax.AppOut: true, // >>
	syntax.RdrAll: true, // &>
	syntax.AppAll: true, // &>>
	syntax.DplOut: true, // >&
	syntax.ClbOut: true, // >|
}

// ExtractCommands walks a parsed bash file and returns the flat list of
// simple commands it contains, or ok=false if the input must be rejected
// outright (an unsafe output redirect, or an AST shape the extractor does
// not model).
func ExtractCommands(file *syntax.File) (cmds []SimpleCommand, ok bool) {
	return extractStmts(file.Stmts)
}

func extractStmts(stmts []*syntax.Stmt) ([]SimpleCommand, bool) {
	var out []SimpleCommand
	for _, stmt := range stmts {
		cmds, ok := extractStmt(stmt)
		if !ok {
			return nil, false
		}
		out = append(out, cmds...)
	}
	return out, true
}

func extractStmt(stmt *syntax.Stmt) ([]SimpleCommand, bool) {
	if !redirectsAreSafe(stmt.Redirs) {
		return nil, false
	}

	switch cmd := stmt.Cmd.(type) {
	case nil:
		return nil, true
	case *syntax.CallExpr:
		return extractCallExpr(cmd)
	case *syntax.BinaryCmd:
		left, ok := extractStmt(cmd.X)
		if !ok {
			return nil, false
		}
		right, ok := extractStmt(cmd.Y)
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	case *syntax.Block:
		return extractStmts(cmd.Stmts)
	case *syntax.Subshell:
		return extractStmts(cmd.Stmts)
	case *syntax.TimeClause:
		// "time" (and "time -p") is modeled natively by the parser rather
		// than stripped as text (spec §4.1); unwrap to the timed statement.
		if cmd.Stmt == nil {
			return nil, true
		}
		return extractStmt(cmd.Stmt)
	default:
		// IfClause, WhileClause, ForClause, CaseClause, FuncDecl, and any
		// other compound shape are outside the grammar subset this engine
		// models (spec §3's tagged variant is {command, pipeline, compound,
		// redirect, word, assignment, operator}); give up rather than guess.
		return nil, false
	}
}

func extractCallExpr(call *syntax.CallExpr) ([]SimpleCommand, bool) {
	values, static := resolveWords(call.Args)
	if !static {
		return []SimpleCommand{{Static: false}}, true
	}
	if len(values) == 0 {
		return nil, true
	}
	return []SimpleCommand{{Tokens: values, Static: true}}, true
}

func redirectsAreSafe(redirs []*syntax.Redirect) bool {
	for _, r := range redirs {
		if !writingRedirectOps[r.Op] {
			continue // input redirects, here-docs/here-strings, fd dup reads: ignored
		}
		target, static := resolveWord(r.Word)
		if !static {
			return false // can't prove the target is safe
		}
		if isFileDescriptor(target) {
			continue // e.g. 2>&1
		}
		if !safeRedirectTargets[strings.TrimSpace(target)] {
			return false
		}
	}
	return true
}

func isFileDescriptor(target string) bool {
	if target == "" {
		return false
	}
	for _, r := range target {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
