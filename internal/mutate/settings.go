// Package mutate edits the two project configuration files djinit manages:
// the application registry (INSTALLED_APPS in settings) and the URL routing
// table (urlpatterns). The insertion functions are pure text transforms; the
// Mutator sequences them with backups and the actual file writes.
package mutate

import (
	"fmt"
	"strings"
)

// InsertAppEntry returns content with an application-config entry for
// appName appended to the INSTALLED_APPS list. The returned bool reports
// whether anything changed: when the application is already registered the
// content comes back untouched and changed is false, so running the same add
// twice leaves exactly one entry.
func InsertAppEntry(content, appName string) (newContent string, changed bool, err error) {
	if strings.TrimSpace(content) == "" {
		return content, false, fmt.Errorf("file is empty")
	}
	if !strings.Contains(content, "INSTALLED_APPS") {
		return content, false, fmt.Errorf("no INSTALLED_APPS list found")
	}

	lines := strings.Split(content, "\n")

	start, end := findListBounds(lines, "INSTALLED_APPS")
	if start == -1 || end == -1 {
		return content, false, fmt.Errorf("INSTALLED_APPS list is not in a recognized form")
	}

	// Already registered, either as the full AppConfig path or the bare
	// module name. The opening and closing lines are scanned too so entries
	// of a single-line list are seen.
	patterns := []string{
		fmt.Sprintf("%s.apps.%sConfig", appName, TitleCase(appName)),
		appName,
	}
	for _, line := range lines[start : end+1] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		for _, p := range patterns {
			if strings.Contains(trimmed, "'"+p+"'") || strings.Contains(trimmed, `"`+p+`"`) {
				return content, false, nil
			}
		}
	}

	if start == end {
		lines[start] = insertInline(lines[start], AppEntry(appName))
	} else {
		indent := detectIndent(lines[start+1 : end])
		if indent == "" {
			return content, false, fmt.Errorf("cannot determine list indentation")
		}
		lines = insertLine(lines, end, indent+AppEntry(appName))
	}
	newContent = strings.Join(lines, "\n")

	if err := checkBrackets(newContent); err != nil {
		return content, false, err
	}
	return newContent, true, nil
}

// AppEntry returns the registry line inserted for appName, without
// indentation, for display in guidance documents and audit records.
func AppEntry(appName string) string {
	return fmt.Sprintf("'%s.apps.%sConfig',", appName, TitleCase(appName))
}

// findListBounds locates a `name = [ ... ]` list literal and returns the
// line indexes of the opening and closing lines, or (-1, -1). A list that
// opens and closes on the same line (`name = []`) yields start == end.
func findListBounds(lines []string, name string) (start, end int) {
	start, end = -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start == -1 {
			if strings.HasPrefix(trimmed, name) && strings.Contains(line, "[") {
				start = i
				if strings.Contains(line[strings.Index(line, "[")+1:], "]") {
					return start, start
				}
			}
			continue
		}
		if strings.Contains(line, "]") {
			end = i
			return start, end
		}
	}
	return start, end
}

// insertInline appends entry inside a single-line list literal, before its
// closing bracket.
func insertInline(line, entry string) string {
	open := strings.Index(line, "[")
	closing := strings.LastIndex(line, "]")
	inner := strings.TrimSpace(line[open+1 : closing])
	switch {
	case inner == "":
		return line[:open+1] + entry + line[closing:]
	case strings.HasSuffix(inner, ","):
		return line[:closing] + " " + entry + line[closing:]
	default:
		return line[:closing] + ", " + entry + line[closing:]
	}
}

// detectIndent returns the leading whitespace of the first non-blank,
// non-comment entry line, or "" when none exists.
func detectIndent(body []string) string {
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	}
	return ""
}

// insertLine inserts entry before index i.
func insertLine(lines []string, i int, entry string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:i]...)
	out = append(out, entry)
	out = append(out, lines[i:]...)
	return out
}

// checkBrackets is the post-write sanity check: an insertion must never
// unbalance the file's square brackets.
func checkBrackets(content string) error {
	if strings.Count(content, "[") != strings.Count(content, "]") {
		return fmt.Errorf("bracket mismatch after modification")
	}
	return nil
}

// TitleCase uppercases the first letter of each underscore-separated part of
// an application name (user_data -> User_Data). It is the single source of
// the AppConfig class prefix: the scaffolder names the generated class with
// it and the registry insertion builds the matching entry.
func TitleCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = r == '_'
		b.WriteRune(r)
	}
	return b.String()
}
