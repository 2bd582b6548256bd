package mutate

import (
	"fmt"
	"strings"
)

// CheckSettings verifies that the application-registry content is in a shape
// the mutator can edit: the INSTALLED_APPS list is locatable and its entry
// indentation can be determined.
func CheckSettings(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("file is empty")
	}
	if !strings.Contains(content, "INSTALLED_APPS") {
		return fmt.Errorf("no INSTALLED_APPS list found")
	}

	lines := strings.Split(content, "\n")
	start, end := findListBounds(lines, "INSTALLED_APPS")
	if start == -1 || end == -1 {
		return fmt.Errorf("INSTALLED_APPS list is not in a recognized form")
	}
	// A single-line list needs no indentation probe.
	if start != end && detectIndent(lines[start+1:end]) == "" {
		return fmt.Errorf("cannot determine list indentation")
	}
	return checkBrackets(content)
}

// CheckURLs verifies that the URL-routing content is in a shape the mutator
// can edit.
func CheckURLs(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("file is empty")
	}
	if !strings.Contains(content, "urlpatterns") {
		return fmt.Errorf("no urlpatterns list found")
	}

	lines := strings.Split(content, "\n")
	start, end := findListBounds(lines, "urlpatterns")
	if start == -1 || end == -1 {
		return fmt.Errorf("urlpatterns list is not in a recognized form")
	}
	return checkBrackets(content)
}
