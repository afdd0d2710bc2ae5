package domain

import "strings"

// Rewrite dispatches on the classified pattern and returns the transformed
// text plus the number of handler declarations the rewriters matched. The
// handler body is always carried over verbatim; only the declaration shape
// and one wrapping layer change.
//
// A dispatch that matches zero handlers returns the text unchanged: a no-op,
// not an error. A match whose balanced span cannot be closed (a stray brace
// inside a template literal, say) also leaves the text unchanged but still
// counts as matched, so the caller runs the Verifier instead of skipping.
func Rewrite(text string, pattern RoutePattern, wrapper string) (string, int) {
	switch pattern {
	case PatternPlainAsync, PatternDynamicRoute:
		// Dynamic routes share the plain-async mechanics: the destructured
		// route-parameters argument rides along inside the verbatim params.
		return rewritePlainAsync(text, wrapper)
	case PatternWithAuth:
		return rewriteWithAuth(text, wrapper)
	case PatternMultipleMethods:
		// A file may mix shapes across verbs; apply both rewriters
		// independently and exhaustively.
		out, n := rewritePlainAsync(text, wrapper)
		out, m := rewriteWithAuth(out, wrapper)
		return out, n + m
	default:
		return text, 0
	}
}

// rewritePlainAsync turns every
//
//	export async function VERB(params) { body }
//
// into an internal helper plus a wrapped export:
//
//	async function handleVerb(params) { body }
//	export const VERB = wrapper(handleVerb);
func rewritePlainAsync(text, wrapper string) (string, int) {
	matched := 0
	searchFrom := 0
	for {
		loc := reAsyncHandler.FindStringSubmatchIndex(text[searchFrom:])
		if loc == nil {
			return text, matched
		}
		matched++
		start := searchFrom + loc[0]
		verb := text[searchFrom+loc[2] : searchFrom+loc[3]]
		openParen := searchFrom + loc[1] - 1 // match ends at the opening paren

		closeParen := scanBalanced(text, openParen, '(', ')')
		if closeParen < 0 {
			searchFrom = openParen + 1
			continue
		}
		bodyOpen := indexAfter(text, closeParen, '{')
		if bodyOpen < 0 {
			searchFrom = closeParen + 1
			continue
		}
		bodyClose := scanBalanced(text, bodyOpen, '{', '}')
		if bodyClose < 0 {
			searchFrom = bodyOpen + 1
			continue
		}

		helper := helperName(verb)
		decl := "async function " + helper
		exportLine := "\n\nexport const " + verb + " = " + wrapper + "(" + helper + ");"

		var b strings.Builder
		b.Grow(len(text) + len(exportLine))
		b.WriteString(text[:start])
		b.WriteString(decl)
		b.WriteString(text[openParen : bodyClose+1]) // params and body verbatim
		b.WriteString(exportLine)
		b.WriteString(text[bodyClose+1:])
		text = b.String()

		searchFrom = start + len(decl) + (bodyClose + 1 - openParen) + len(exportLine)
	}
}

// rewriteWithAuth wraps every
//
//	export const VERB = withAuth(...)
//
// as
//
//	export const VERB = wrapper(withAuth(...));
//
// The entire withAuth call, trailing options argument included, is captured
// by a balanced-paren scan and left untouched inside the new wrapping layer.
func rewriteWithAuth(text, wrapper string) (string, int) {
	matched := 0
	searchFrom := 0
	for {
		loc := reWithAuth.FindStringSubmatchIndex(text[searchFrom:])
		if loc == nil {
			return text, matched
		}
		matched++
		start := searchFrom + loc[0]
		openParen := searchFrom + loc[1] - 1

		closeParen := scanBalanced(text, openParen, '(', ')')
		if closeParen < 0 {
			searchFrom = openParen + 1
			continue
		}

		callStart := start + strings.LastIndex(text[start:openParen], "withAuth")
		wrapped := wrapper + "(" + text[callStart:closeParen+1] + ")"

		text = text[:callStart] + wrapped + text[closeParen+1:]
		searchFrom = callStart + len(wrapped)
	}
}

// helperName derives the internal helper identifier for a verb:
// GET -> handleGet, OPTIONS -> handleOptions.
func helperName(verb string) string {
	return "handle" + verb[:1] + strings.ToLower(verb[1:])
}
