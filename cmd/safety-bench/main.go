// Package main provides safety-bench, a throughput harness for the safety
// classifier: it replays a corpus of commands (one per line) through
// safety.Evaluate and reports how many were decided per second, plus the
// allow/ask split. Unlike safety-hook, this is a long-lived process
// evaluating many commands in one run, so repeated commands in a corpus
// are memoized through internal/decisioncache.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ldayton/claude-command-guard/internal/decisioncache"
	"github.com/ldayton/claude-command-guard/internal/safety"
)

func main() {
	path := flag.String("file", "", "Path to a newline-delimited corpus of commands (default: stdin)")
	cacheSize := flag.Int("cache-size", 256, "Decision-cache capacity; 0 disables memoization")
	flag.Parse()

	in := os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening %s: %v\n", *path, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var commands []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading corpus: %v\n", err)
		os.Exit(1)
	}

	var cache *decisioncache.Cache
	if *cacheSize > 0 {
		cache = decisioncache.New(*cacheSize)
	}

	var allowed, asked, hits int
	start := time.Now()
	for _, c := range commands {
		var result safety.Result
		if cache != nil {
			if cached, ok := cache.Get(c); ok {
				hits++
				result.Reason = cached.Reason
				if cached.Decision == safety.Safe.String() {
					result.Decision = safety.Safe
				} else {
					result.Decision = safety.Unknown
				}
			} else {
				result = safety.Evaluate(c)
				cache.Put(c, decisioncache.Entry{Decision: result.Decision.String(), Reason: result.Reason})
			}
		} else {
			result = safety.Evaluate(c)
		}
		if result.Decision == safety.Safe {
			allowed++
		} else {
			asked++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("commands:  %d\n", len(commands))
	fmt.Printf("allow:     %d\n", allowed)
	fmt.Printf("ask:       %d\n", asked)
	if cache != nil {
		fmt.Printf("cache hits: %d\n", hits)
	}
	fmt.Printf("elapsed:   %s\n", elapsed)
	if len(commands) > 0 {
		fmt.Printf("per command: %s\n", elapsed/time.Duration(len(commands)))
	}
}
