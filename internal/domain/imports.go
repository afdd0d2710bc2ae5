package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// EnsureImport guarantees that text imports wrapper from module. Idempotent:
// if an import already binds the identifier from that module the text is
// returned unchanged, so repeated invocations never duplicate a binding,
// even on partially-transformed files.
func EnsureImport(text, wrapper, module string) string {
	if hasImportBinding(text, wrapper, module) {
		return text
	}

	importLine := fmt.Sprintf("import { %s } from '%s';", wrapper, module)
	lines := strings.Split(text, "\n")

	if last, ok := lastImportLine(lines); ok {
		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:last+1]...)
		out = append(out, importLine)
		out = append(out, lines[last+1:]...)
		return strings.Join(out, "\n")
	}

	// No imports at all: insert before the first non-comment, non-blank line.
	first := firstCodeLine(lines)
	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:first]...)
	out = append(out, importLine, "")
	out = append(out, lines[first:]...)
	return strings.Join(out, "\n")
}

// hasImportBinding reports whether any import statement binds wrapper from
// module. Word boundaries keep withHighRateLimit from matching a longer
// identifier that merely contains it.
func hasImportBinding(text, wrapper, module string) bool {
	re := regexp.MustCompile(
		`import\s*(?:type\s*)?\{[^}]*\b` + regexp.QuoteMeta(wrapper) + `\b[^}]*\}\s*from\s*['"]` +
			regexp.QuoteMeta(module) + `['"]`)
	return re.MatchString(text)
}

// lastImportLine returns the index of the line on which the last import
// statement ends. Multi-line imports are followed to the line carrying
// their module path.
func lastImportLine(lines []string) (int, bool) {
	last, found := -1, false
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "import ") && !strings.HasPrefix(trimmed, "import{") {
			continue
		}
		end := i
		for end < len(lines) && !strings.ContainsAny(lines[end], `'"`) {
			end++
		}
		if end == len(lines) {
			break
		}
		last, found = end, true
		i = end
	}
	return last, found
}

// firstCodeLine returns the index of the first line that is neither blank
// nor inside a comment.
func firstCodeLine(lines []string) int {
	inBlock := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case inBlock:
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
		case trimmed == "" || strings.HasPrefix(trimmed, "//"):
			// keep scanning
		case strings.HasPrefix(trimmed, "/*"):
			if !strings.Contains(trimmed, "*/") {
				inBlock = true
			}
		default:
			return i
		}
	}
	return len(lines)
}
