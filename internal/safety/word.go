package safety

import "mvdan.cc/sh/v3/syntax"

// resolveWord reduces a syntax.Word to its literal text when every part of
// the word is static (literal text or quoting), and reports whether the
// resolution was complete. Any variable expansion, command substitution,
// arithmetic expansion, process substitution, or extended glob marks the
// word dynamic.
//
// Dynamic words never carry a usable value: the caller is expected to treat
// a dynamic token as un-matchable against any rule table, which is what
// keeps classification conservative for command substitution and similar
// dynamic-dispatch tricks (spec Non-goals) without needing a separate
// "contains dynamic content" check threaded through every rule.
func resolveWord(w *syntax.Word) (value string, static bool) {
	if w == nil {
		return "", true
	}
	static = true
	var lit string
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			lit += p.Value
		case *syntax.SglQuoted:
			lit += p.Value
		case *syntax.DblQuoted:
			for _, sub := range p.Parts {
				if l, ok := sub.(*syntax.Lit); ok {
					lit += l.Value
				} else {
					static = false
				}
			}
		default:
			// ParamExp, CmdSubst, ArithmExp, ProcSubst, ExtGlob, and any
			// future word-part kind are all dynamic.
			static = false
		}
	}
	if !static {
		return "", false
	}
	return lit, true
}

// resolveWords resolves a list of words in order, reporting the literal
// values and whether every word in the list was static.
func resolveWords(words []*syntax.Word) (values []string, allStatic bool) {
	allStatic = true
	values = make([]string, 0, len(words))
	for _, w := range words {
		v, static := resolveWord(w)
		if !static {
			allStatic = false
			continue
		}
		values = append(values, v)
	}
	return values, allStatic
}
