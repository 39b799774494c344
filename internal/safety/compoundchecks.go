package safety

import "strings"

// compoundCheck validates a command keyed by a multi-token literal prefix,
// rather than by its bare command name (spec §4.7's COMPOUND_CHECKS).
type compoundCheck struct {
	prefix []string
	check  func(tokens []string) bool
}

// CompoundChecks covers CLI sub-commands that wrap an arbitrary HTTP-style
// API call; each tool gets its own validator since the real-world method/
// field semantics differ per tool (spec §4.7).
var CompoundChecks = []compoundCheck{
	{prefix: []string{"gh", "api"}, check: checkGhAPI},
	{prefix: []string{"auth0", "api"}, check: checkAuth0API},
}

// ghFieldFlags mark a "gh api" invocation as carrying request fields. gh
// itself defaults the HTTP method to POST whenever one of these is present
// and no -X/--method override is given, so their presence only matters when
// no explicit method was supplied.
var ghFieldFlags = map[string]bool{
	"-F": true, "--field": true, "--raw-field": true,
	"--input": true, "-f": true,
}

// checkGhAPI determines the effective method first, then decides: an
// explicit -X/--method must be GET or HEAD; absent that, the presence of
// any field flag means gh will issue a POST, so the call is safe only when
// no field flags were given either.
func checkGhAPI(tokens []string) bool {
	var method string
	hasMethod := false
	hasFields := false

	for i, t := range tokens {
		switch {
		case t == "-X" || t == "--method":
			if i+1 >= len(tokens) {
				return false
			}
			method = strings.ToUpper(tokens[i+1])
			hasMethod = true
		case strings.HasPrefix(t, "--method="):
			method = strings.ToUpper(strings.TrimPrefix(t, "--method="))
			hasMethod = true
		case strings.HasPrefix(t, "-X"):
			method = strings.ToUpper(strings.TrimPrefix(t[2:], "="))
			hasMethod = true
		case ghFieldFlags[t]:
			hasFields = true
		case strings.Contains(t, "=") && ghFieldFlags[t[:strings.Index(t, "=")]]:
			hasFields = true
		}
	}

	if hasMethod {
		return method == "GET" || method == "HEAD"
	}
	return !hasFields
}

// auth0UnsafeVerbs are the bare HTTP-verb tokens "auth0 api" accepts as a
// positional argument (e.g. "auth0 api post users").
var auth0UnsafeVerbs = map[string]bool{
	"post": true, "put": true, "patch": true, "delete": true,
}

// checkAuth0API is safe unless a mutating verb token or a body flag
// appears anywhere in the invocation.
func checkAuth0API(tokens []string) bool {
	for _, t := range tokens {
		if auth0UnsafeVerbs[t] || t == "-d" || t == "--data" {
			return false
		}
	}
	return true
}
