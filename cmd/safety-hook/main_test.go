package main

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/ldayton/claude-command-guard/internal/safety"
)

// TestScenarios drives every command in testdata/scenarios.txt through the
// same safety.Evaluate call main() itself uses, and checks the resulting
// allow/ask decision against the expected column. This is the end-to-end
// coverage for spec.md §8's worked scenarios; it calls the engine directly
// rather than exec'ing the built binary, since the decision logic between
// stdin and stdout is exactly this one call.
func TestScenarios(t *testing.T) {
	f, err := os.Open("testdata/scenarios.txt")
	if err != nil {
		t.Fatalf("opening scenarios file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	ran := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.LastIndex(line, "\t")
		if idx < 0 {
			t.Fatalf("testdata/scenarios.txt:%d: missing tab separator", lineNo)
		}
		command := line[:idx]
		want := strings.TrimSpace(line[idx+1:])

		t.Run(command, func(t *testing.T) {
			result := safety.Evaluate(command)
			got := "ask"
			if result.Decision == safety.Safe {
				got = "allow"
			}
			if got != want {
				t.Errorf("Evaluate(%q) = %s, want %s (reason: %s)", command, got, want, result.Reason)
			}
		})
		ran++
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("reading scenarios file: %v", err)
	}
	if ran == 0 {
		t.Fatal("no scenarios were read from testdata/scenarios.txt")
	}
}
