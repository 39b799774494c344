// Package hookio reads and writes the Claude Code PreToolUse hook JSON
// envelope over stdin/stdout.
package hookio

import (
	"encoding/json"
	"io"
	"os"
)

// Input is the subset of the PreToolUse payload this hook reads. The real
// payload carries more fields (session_id, transcript_path, cwd) that vary
// by tool and aren't needed to classify a bash command.
type Input struct {
	ToolName  string `json:"tool_name"`
	ToolInput struct {
		Command string `json:"command"`
	} `json:"tool_input"`
}

// Output is the PreToolUse hook response. permissionDecision is always
// "allow" or "ask" - this hook never emits "deny", since a command it
// cannot prove safe is still the user's call to make.
type Output struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

type HookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
}

// ReadInput reads and decodes the PreToolUse payload from r.
func ReadInput(r io.Reader) (*Input, error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

// WriteDecision encodes a permission decision to w. The hook's exit code is
// always 0 regardless of the decision (spec §6) - "ask" defers to the
// user's own approval prompt rather than failing the tool call.
func WriteDecision(w io.Writer, decision, reason string) error {
	out := Output{HookSpecificOutput: HookSpecificOutput{
		HookEventName:            "PreToolUse",
		PermissionDecision:       decision,
		PermissionDecisionReason: reason,
	}}
	return json.NewEncoder(w).Encode(out)
}

// WriteFault reports a fault (malformed input, parse failure) as "ask"
// rather than failing the hook outright - per the error-handling design,
// every fault degrades to asking the user instead of blocking or silently
// allowing.
func WriteFault(reason string) {
	_ = WriteDecision(os.Stdout, "ask", reason)
	os.Exit(0)
}
