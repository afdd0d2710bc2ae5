package domain

import (
	"regexp"
	"strings"
)

var verbAlt = strings.Join(HTTPVerbs, "|")

var (
	reAsyncHandler = regexp.MustCompile(`export\s+async\s+function\s+(` + verbAlt + `)\s*\(`)
	reConstHandler = regexp.MustCompile(`export\s+const\s+(` + verbAlt + `)\s*=`)
	reDynamicRoute = regexp.MustCompile(`export\s+async\s+function\s+(?:` + verbAlt + `)\s*\([^)]*\{\s*params\s*\}\s*:`)
	reWithAuth     = regexp.MustCompile(`export\s+const\s+(` + verbAlt + `)\s*=\s*withAuth\s*\(`)
)

// classifyRule pairs a predicate with the pattern it proves. Rules are
// evaluated top-to-bottom; the first match wins.
type classifyRule struct {
	pattern RoutePattern
	match   func(text string) bool
}

var classifyRules = []classifyRule{
	{PatternAlreadyProtected, func(text string) bool {
		_, ok := DetectWrapper(text)
		return ok
	}},
	{PatternMultipleMethods, func(text string) bool {
		return countExportedHandlers(text) > 1
	}},
	{PatternDynamicRoute, func(text string) bool {
		return reDynamicRoute.MatchString(text)
	}},
	{PatternWithAuth, func(text string) bool {
		return reWithAuth.MatchString(text)
	}},
	{PatternPlainAsync, func(text string) bool {
		return len(reAsyncHandler.FindAllString(text, -1)) == 1
	}},
}

// Classify tags the code shape of a route file. Total over all inputs:
// empty or unrecognized text yields PatternUnknown, never an error.
func Classify(text string) RoutePattern {
	for _, rule := range classifyRules {
		if rule.match(text) {
			return rule.pattern
		}
	}
	return PatternUnknown
}

// countExportedHandlers counts exported HTTP-verb handlers in both the
// function and const declaration forms, deduplicating per verb so that a
// verb declared once is never double-counted.
func countExportedHandlers(text string) int {
	verbs := map[string]bool{}
	for _, m := range reAsyncHandler.FindAllStringSubmatch(text, -1) {
		verbs[m[1]] = true
	}
	for _, m := range reConstHandler.FindAllStringSubmatch(text, -1) {
		verbs[m[1]] = true
	}
	return len(verbs)
}
