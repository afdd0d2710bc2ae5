package domain

import "strings"

const diffRule = "────────────────────────────────────────────────────────────────"

// RenderDiff renders a line-by-line before/after diff for preview mode.
// Pure rendering: no file is touched. Lines are compared positionally;
// every differing pair is emitted as a -/+ couple, and lines past the end
// of the shorter text appear unpaired.
func RenderDiff(original, transformed, path string) string {
	var b strings.Builder
	b.WriteString(path + "\n")
	b.WriteString("--- ORIGINAL\n")
	b.WriteString("+++ TRANSFORMED\n")

	oldLines := strings.Split(original, "\n")
	newLines := strings.Split(transformed, "\n")

	n := len(oldLines)
	if len(newLines) > n {
		n = len(newLines)
	}
	for i := 0; i < n; i++ {
		var oldLine, newLine string
		hasOld, hasNew := i < len(oldLines), i < len(newLines)
		if hasOld {
			oldLine = oldLines[i]
		}
		if hasNew {
			newLine = newLines[i]
		}
		if hasOld && hasNew && oldLine == newLine {
			continue
		}
		if hasOld {
			b.WriteString("- " + oldLine + "\n")
		}
		if hasNew {
			b.WriteString("+ " + newLine + "\n")
		}
	}

	b.WriteString(diffRule + "\n")
	return b.String()
}
