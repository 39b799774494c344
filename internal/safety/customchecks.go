package safety

import "strings"

// CustomChecks are per-tool validators for commands whose safety depends on
// which flags or sub-arguments are present, rather than on the bare command
// name or a fixed CLI structure (spec §4.7).
var CustomChecks = map[string]func(tokens []string, depth int) bool{
	"find":       func(t []string, _ int) bool { return checkFind(t) },
	"sort":       func(t []string, _ int) bool { return checkSort(t) },
	"sed":        func(t []string, _ int) bool { return checkSed(t) },
	"awk":        func(t []string, _ int) bool { return checkAwk(t) },
	"dmesg":      func(t []string, _ int) bool { return checkDmesg(t) },
	"ifconfig":   func(t []string, _ int) bool { return checkIfconfig(t) },
	"ip":         func(t []string, _ int) bool { return checkIP(t) },
	"journalctl": func(t []string, _ int) bool { return checkJournalctl(t) },
	"openssl":    func(t []string, _ int) bool { return checkOpenssl(t) },
	"curl":       func(t []string, _ int) bool { return checkCurl(t) },
	"bash":       checkShell,
	"sh":         checkShell,
	"zsh":        checkShell,
	"xargs":      checkXargs,
}

// find is read-only traversal/printing unless one of the primaries below
// is present: the deleting, command-running and file-writing actions, and
// also -ls.
var findMutatingPrimaries = map[string]bool{
	"-delete": true, "-exec": true, "-execdir": true,
	"-ok": true, "-okdir": true,
	"-fprint": true, "-fprint0": true, "-fprintf": true, "-ls": true,
}

func checkFind(tokens []string) bool {
	for _, t := range tokens[1:] {
		if findMutatingPrimaries[t] {
			return false
		}
	}
	return true
}

// sort only touches the filesystem when told to write its result with -o.
func checkSort(tokens []string) bool {
	for _, t := range tokens[1:] {
		if strings.HasPrefix(t, "-o") || t == "--output" || strings.HasPrefix(t, "--output=") {
			return false
		}
	}
	return true
}

// sed is read-only unless -i/--in-place rewrites the input file.
func checkSed(tokens []string) bool {
	for _, t := range tokens[1:] {
		if t == "-i" || strings.HasPrefix(t, "-i") ||
			t == "--in-place" || strings.HasPrefix(t, "--in-place=") {
			return false
		}
	}
	return true
}

// awk is read-only unless its program reads from -f/--file (a program file
// rather than a fixed one-liner, so its contents can't be inspected here),
// unless gawk's in-place extension is loaded with "-i inplace",
// or unless a non-flag token (the program text itself) contains a redirect,
// a pipe, or the system() builtin. The system() substring match over-
// rejects any identifier containing those letters in a non-flag token
// (spec §9 open question) - accepted, since the alternative is evaluating
// arbitrary awk source.
func checkAwk(tokens []string) bool {
	for i, t := range tokens[1:] {
		switch {
		case t == "-f" || strings.HasPrefix(t, "-f") ||
			t == "--file" || strings.HasPrefix(t, "--file="):
			return false
		case t == "-i" && i+2 < len(tokens) && tokens[i+2] == "inplace":
			return false
		case !strings.HasPrefix(t, "-") &&
			(strings.Contains(t, ">") || strings.Contains(t, "|") || strings.Contains(t, "system")):
			return false
		}
	}
	return true
}

// dmesg is read-only unless told to clear the ring buffer.
func checkDmesg(tokens []string) bool {
	for _, t := range tokens[1:] {
		if t == "-c" || t == "-C" || t == "--clear" || t == "--read-clear" {
			return false
		}
	}
	return true
}

// ifconfig with no arguments, or a single interface name, only displays
// status; any further argument is an assignment (up/down/address/etc).
func checkIfconfig(tokens []string) bool {
	return len(tokens) <= 2
}

// ip is safe only when its action is a read-only one: "show"/"list"/"lst"/
// "get"/"monitor" (or omitted, which ip treats as "show").
var ipSafeActions = map[string]bool{
	"show": true, "list": true, "lst": true, "get": true, "monitor": true,
}

func checkIP(tokens []string) bool {
	i := skipFlags(tokens[1:], nil)
	rest := tokens[1:][i:]
	if len(rest) == 0 {
		return false
	}
	if len(rest) == 1 {
		return true // object only, e.g. "ip addr" == "ip addr show"
	}
	return ipSafeActions[rest[1]]
}

// journalctl is read-only unless told to vacuum, rotate, or flush its logs.
func checkJournalctl(tokens []string) bool {
	for _, t := range tokens[1:] {
		if strings.HasPrefix(t, "--vacuum-") || t == "--rotate" ||
			t == "--flush" || t == "--sync" || t == "--relinquish-var" {
			return false
		}
	}
	return true
}

// openssl is treated as safe unless it's told to write a key or cert to
// disk.
func checkOpenssl(tokens []string) bool {
	for _, t := range tokens[1:] {
		if t == "-out" || t == "-keyout" || strings.HasPrefix(t, "-out=") {
			return false
		}
	}
	return true
}

// curl is safe as a read-only GET/HEAD with no local side effect. Output-
// to-file is safe only when the target is /dev/null (same as a shell
// redirect); upload and body-bearing flags are unsafe regardless of
// target, since they always imply a non-GET request.
var curlOutputFlags = map[string]bool{"-o": true, "--output": true}

var curlAlwaysUnsafeFlags = map[string]bool{
	"-O": true, "--remote-name": true, "--remote-name-all": true,
	"-J": true, "--remote-header-name": true,
	"-T": true, "--upload-file": true,
	"-d": true, "--data": true, "--data-ascii": true, "--data-binary": true,
	"--data-raw": true, "--data-urlencode": true,
	"-F": true, "--form": true,
}

func checkCurl(tokens []string) bool {
	for i, t := range tokens[1:] {
		idx := i + 1 // t's index within tokens
		switch {
		case curlAlwaysUnsafeFlags[t]:
			return false
		case curlOutputFlags[t]:
			if idx+1 >= len(tokens) || tokens[idx+1] != "/dev/null" {
				return false
			}
		case t == "-X" || t == "--request":
			if idx+1 >= len(tokens) {
				return false
			}
			method := strings.ToUpper(tokens[idx+1])
			if method != "GET" && method != "HEAD" {
				return false
			}
		case strings.HasPrefix(t, "-X") || strings.HasPrefix(t, "--request="):
			method := strings.TrimPrefix(strings.TrimPrefix(t, "--request="), "-X")
			method = strings.ToUpper(strings.TrimPrefix(method, "="))
			if method != "GET" && method != "HEAD" {
				return false
			}
		}
	}
	return true
}

// checkShell handles "bash -c <script>" and combined short-flag forms like
// "bash -lc <script>" (login shell + -c), for bash/sh/zsh alike: the inner
// script is itself parsed and classified by the same engine, recursively,
// rather than trusted or rejected wholesale.
func checkShell(tokens []string, depth int) bool {
	if len(tokens) < 3 {
		return false
	}
	flags := tokens[1]
	if !strings.HasPrefix(flags, "-") || strings.HasPrefix(flags, "--") {
		return false
	}
	if !strings.Contains(flags, "c") {
		return false
	}
	return evaluateScript(tokens[2], depth+1)
}

// xargs applies its trailing command to each input line; that trailing
// command is classified directly, without re-parsing (it's already a flat
// token list, not a shell string).
func checkXargs(tokens []string, depth int) bool {
	if depth+1 > maxRecursionDepth {
		return false
	}
	rest := skipXargsFlags(tokens[1:])
	if len(rest) == 0 {
		return true // xargs with no command defaults to echo
	}
	return classify(rest, depth+1)
}

// xargsFlagsWithArg names xargs flags that consume a following value, so
// the trailing command is located correctly.
var xargsFlagsWithArg = map[string]bool{
	"-I": true, "-i": true, "-n": true, "-d": true, "-a": true,
	"-s": true, "-P": true, "-L": true, "-E": true,
	"--max-args": true, "--delimiter": true, "--arg-file": true,
	"--max-procs": true, "--max-lines": true, "--eof": true,
}

func skipXargsFlags(tokens []string) []string {
	i := 0
	for i < len(tokens) && strings.HasPrefix(tokens[i], "-") {
		if xargsFlagsWithArg[tokens[i]] {
			i += 2
		} else {
			i++
		}
	}
	return tokens[i:]
}
