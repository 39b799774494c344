// Package main provides the PreToolUse safety hook for Claude Code's Bash
// tool: it classifies a proposed command as safe-to-auto-allow or
// not-provably-safe, and never blocks outright.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ldayton/claude-command-guard/internal/auditlog"
	"github.com/ldayton/claude-command-guard/internal/hookio"
	"github.com/ldayton/claude-command-guard/internal/safety"
)

func main() {
	auditPath := flag.String("audit-log", "", "Append a JSON-lines decision record to this path (disabled if empty)")
	showHelp := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *showHelp {
		showUsage()
		os.Exit(0)
	}

	input, err := hookio.ReadInput(os.Stdin)
	if err != nil {
		// A hook that cannot even parse its own input must still not block
		// the tool call - degrade to "ask" rather than exit non-zero.
		hookio.WriteFault("failed to parse hook input: " + err.Error())
		return
	}

	result := safety.Evaluate(input.ToolInput.Command)

	decision := "ask"
	if result.Decision == safety.Safe {
		decision = "allow"
	}

	if *auditPath != "" {
		logger := auditlog.New(auditlog.Config{Path: *auditPath})
		logger.Record(input.ToolInput.Command, decision, result.Reason, time.Now())
		_ = logger.Close()
	}

	if err := hookio.WriteDecision(os.Stdout, decision, result.Reason); err != nil {
		fmt.Fprintf(os.Stderr, "error writing hook decision: %v\n", err)
	}
	os.Exit(0)
}

func showUsage() {
	fmt.Fprint(os.Stderr, `safety-hook: PreToolUse command-safety hook for Claude Code

Reads a PreToolUse payload from stdin, statically classifies the proposed
Bash command, and writes a permission decision to stdout. Never blocks:
a command that can't be proven safe is left to the user's own approval
("ask"), never denied outright.

USAGE:
    safety-hook [OPTIONS] < payload.json

OPTIONAL:
    -audit-log string
            Append a JSON-lines decision record to this path
    -help
            Show this help message

CLAUDE CODE CONFIGURATION:
Add to your Claude Code settings.json:

{
  "hooks": {
    "PreToolUse": [
      {
        "matcher": "Bash",
        "hooks": [
          { "type": "command", "command": "/path/to/safety-hook" }
        ]
      }
    ]
  }
}

`)
}
