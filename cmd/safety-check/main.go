// Package main provides safety-check, an interactive CLI for trying the
// safety classifier against a command without going through the hook JSON
// envelope - useful when tuning rule tables or debugging a surprising
// "ask" result.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ldayton/claude-command-guard/internal/palette"
	"github.com/ldayton/claude-command-guard/internal/safety"
	"github.com/ldayton/claude-command-guard/internal/statusline"
)

func main() {
	var showLine bool

	root := &cobra.Command{
		Use:   "safety-check [command...]",
		Short: "Classify a bash command the same way the PreToolUse hook would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			result := safety.Evaluate(command)

			decision := "ask"
			if result.Decision == safety.Safe {
				decision = "allow"
			}

			fmt.Println(palette.Render(decision, decision))
			if result.Reason != "" {
				fmt.Println(result.Reason)
			}
			if showLine {
				cwd, err := os.Getwd()
				if err != nil {
					cwd = "?"
				}
				fmt.Println(statusline.Render(cwd, decision, command))
			}
			return nil
		},
	}

	root.Flags().BoolVar(&showLine, "status-line", false, "Also print a statusline-style rendering of the decision")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
