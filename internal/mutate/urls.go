package mutate

import (
	"fmt"
	"strings"
)

// InsertRouteEntry returns content with an include() route for appName
// appended to the urlpatterns list. The main application is special-cased
// onto the root URL; every other application is mounted under its own
// prefix. Like InsertAppEntry, an already-present route is a no-op with
// changed == false.
func InsertRouteEntry(content, appName string) (newContent string, changed bool, err error) {
	if strings.TrimSpace(content) == "" {
		return content, false, fmt.Errorf("file is empty")
	}
	if !strings.Contains(content, "urlpatterns") {
		return content, false, fmt.Errorf("no urlpatterns list found")
	}

	if routePresent(content, appName) {
		return content, false, nil
	}

	lines := strings.Split(content, "\n")
	lines = ensureIncludeImport(lines)

	start, end := findListBounds(lines, "urlpatterns")
	if start == -1 || end == -1 {
		return content, false, fmt.Errorf("urlpatterns list is not in a recognized form")
	}

	if start == end {
		lines[start] = insertInline(lines[start], RouteEntry(appName))
	} else {
		indent := detectIndent(lines[start+1 : end])
		if indent == "" {
			indent = "    "
		}
		lines = insertLine(lines, end, indent+RouteEntry(appName))
	}
	newContent = strings.Join(lines, "\n")

	if err := checkBrackets(newContent); err != nil {
		return content, false, err
	}
	return newContent, true, nil
}

// RouteEntry returns the urlpatterns line inserted for appName, without
// indentation.
func RouteEntry(appName string) string {
	if appName == "main" {
		// The main application serves the site root.
		return "path('', include('main.urls')),"
	}
	return fmt.Sprintf("path('%s/', include('%s.urls')),", appName, appName)
}

// routePresent reports whether a route for appName is already mounted.
func routePresent(content, appName string) bool {
	if appName == "main" {
		return strings.Contains(content, "include('main.urls')")
	}
	return strings.Contains(content, fmt.Sprintf("path('%s/',", appName))
}

// ensureIncludeImport makes sure `include` is importable before a route
// referencing it is added. Three cases, in order: include already imported;
// an existing `from django.urls import path` line that can be extended; no
// django.urls import at all, so a new import line goes in front of the first
// django import.
func ensureIncludeImport(lines []string) []string {
	for i, line := range lines {
		if !strings.Contains(line, "from django.urls import") {
			continue
		}
		if strings.Contains(line, "include") {
			return lines
		}
		if strings.Contains(line, "path") {
			lines[i] = strings.Replace(line, "import path", "import path, include", 1)
			return lines
		}
	}

	for i, line := range lines {
		if strings.HasPrefix(line, "from django.") || strings.HasPrefix(line, "import django") {
			return insertLine(lines, i, "from django.urls import path, include")
		}
	}
	// No django imports at all; prepend so the file at least stays importable.
	return insertLine(lines, 0, "from django.urls import path, include")
}
