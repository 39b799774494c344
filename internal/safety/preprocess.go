package safety

import "strings"

// Preprocess performs lightweight textual normalization before parsing.
//
// The bash reserved word "time" (and "time -p") is deliberately NOT
// stripped here as text: a regex bounded only by \b word boundaries also
// matches inside unrelated flags like --start-time/--end-time, corrupting
// commands such as "aws ec2 describe-instances --start-time ...". It's
// instead handled structurally via *syntax.TimeClause in extract.go, which
// mvdan.cc/sh/v3 already models natively - see extractStmt's TimeClause
// case.
func Preprocess(command string) string {
	return strings.TrimSpace(command)
}
