package safety

// Rule tables are process-wide and immutable after package init: no lookup
// here ever mutates state, and classification stays a pure function of
// (command string, rule tables).

// SafeCommands is the set of bare command names unconditionally safe
// regardless of arguments - read-only tools with no flag that turns them
// into a writer.
var SafeCommands = map[string]bool{
	"ls": true, "pwd": true, "echo": true, "cat": true, "grep": true,
	"egrep": true, "fgrep": true, "head": true, "tail": true, "wc": true,
	"diff": true, "file": true, "which": true, "whoami": true, "date": true,
	"uname": true, "hostname": true, "ps": true, "df": true, "du": true,
	"free": true, "uptime": true, "id": true, "groups": true, "man": true,
	"less": true, "more": true, "stat": true, "readlink": true,
	"realpath": true, "basename": true, "dirname": true, "tree": true,
	"jq": true, "yq": true, "column": true, "tr": true, "cut": true,
	"uniq": true, "comm": true, "cmp": true, "md5sum": true, "sha1sum": true,
	"sha256sum": true, "sha512sum": true, "true": true, "false": true,
	"printf": true, "sleep": true, "env": true, "printenv": true,
	"nproc": true, "locale": true, "history": true, "type": true,
	"ping": true,
}

// SafeScripts is the set of basenames safe regardless of the path they're
// invoked through - local/project utility scripts and read-only CLI tools
// not already covered by SafeCommands.
var SafeScripts = map[string]bool{
	"rg": true, "fd": true, "bat": true, "eza": true, "exa": true,
	"fzf": true, "delta": true, "difft": true, "htop": true, "ncdu": true,
	"lsof": true, "dig": true, "nslookup": true, "host": true,
}

// CurlWrappers is the set of basenames evaluated as if the command were
// "curl ...".
var CurlWrappers = map[string]bool{
	"curlie": true,
}

// PrefixCommands is the set of multi-token prefixes unconditionally safe.
// Matching requires literal token-sequence prefix equality, not a string
// prefix - "pre-commit-hook" must not match "pre-commit".
var PrefixCommands = [][]string{
	{"git", "config", "--get"},
	{"git", "config", "--list"},
	{"git", "stash", "list"},
	{"node", "--version"},
	{"python", "--version"},
	{"python3", "--version"},
	{"pre-commit", "run"},
}

// CLIAliases maps an alias to its canonical tool name, resolved after the
// whitelist/prefix/custom-check/compound-check rules have all missed.
// kubeat/kubeci/kubeci2/kubelab are carried over verbatim from the
// project's own earlier alias list.
var CLIAliases = map[string]string{
	"k":       "kubectl",
	"kubeat":  "kubectl",
	"kubeci":  "kubectl",
	"kubeci2": "kubectl",
	"kubelab": "kubectl",
}
