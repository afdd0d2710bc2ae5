package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Violation names reported by Verify.
const (
	ViolationMissingImport  = "missing wrapper import"
	ViolationBraceImbalance = "brace imbalance"
	ViolationMissingCall    = "missing wrapper invocation"
	ViolationLostExport     = "handler export lost"
)

var reImportLine = regexp.MustCompile(`import\s*(?:type\s*)?\{[^}]*\}\s*from`)

// Verify runs shallow post-condition checks over a rewrite. It proves
// absence of gross corruption, not semantic correctness: in addition to the
// import, brace-balance and wrapper-call checks, it confirms every verb the
// original exported is still exported, which binds the check to the handlers
// the transform was meant to wrap without requiring a parser.
func Verify(original, transformed string) TransformResult {
	var violations []string

	if !hasWrapperImport(transformed) {
		violations = append(violations, ViolationMissingImport)
	}

	opens, closes := strings.Count(transformed, "{"), strings.Count(transformed, "}")
	if opens != closes {
		violations = append(violations,
			fmt.Sprintf("%s (%d open, %d close)", ViolationBraceImbalance, opens, closes))
	}

	if _, ok := DetectWrapper(transformed); !ok {
		violations = append(violations, ViolationMissingCall)
	}

	for _, verb := range exportedVerbs(original) {
		if !containsExportedVerb(transformed, verb) {
			violations = append(violations, fmt.Sprintf("%s: %s", ViolationLostExport, verb))
		}
	}

	return TransformResult{
		Original:    original,
		Transformed: transformed,
		OK:          len(violations) == 0,
		Violations:  violations,
	}
}

// hasWrapperImport reports whether transformed text imports one of the
// recognized wrapper identifiers.
func hasWrapperImport(text string) bool {
	for _, m := range reImportLine.FindAllString(text, -1) {
		for _, w := range RecognizedWrappers() {
			if strings.Contains(m, w) {
				return true
			}
		}
	}
	return false
}

// exportedVerbs lists the HTTP verbs a file exports, in either the function
// or const declaration form.
func exportedVerbs(text string) []string {
	seen := map[string]bool{}
	var verbs []string
	for _, re := range []*regexp.Regexp{reAsyncHandler, reConstHandler} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				verbs = append(verbs, m[1])
			}
		}
	}
	return verbs
}

func containsExportedVerb(text, verb string) bool {
	for _, m := range exportedVerbs(text) {
		if m == verb {
			return true
		}
	}
	return false
}
