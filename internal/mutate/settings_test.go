package mutate

import (
	"strings"
	"testing"
)

const sampleSettings = `"""
File: config/settings/base.py
"""

INSTALLED_APPS = [
    'django.contrib.admin',
    'django.contrib.auth',
    'django.contrib.contenttypes',
    'django.contrib.sessions',
    'django.contrib.messages',
    'django.contrib.staticfiles',
    'main.apps.MainConfig',
]

MIDDLEWARE = [
    'django.middleware.security.SecurityMiddleware',
]
`

func TestInsertAppEntry(t *testing.T) {
	newContent, changed, err := InsertAppEntry(sampleSettings, "blog")
	if err != nil {
		t.Fatalf("InsertAppEntry failed: %v", err)
	}
	if !changed {
		t.Fatal("Expected changed = true")
	}

	if !strings.Contains(newContent, "    'blog.apps.BlogConfig',") {
		t.Errorf("New entry missing or misindented:\n%s", newContent)
	}
	if strings.Count(newContent, "blog.apps.BlogConfig") != 1 {
		t.Errorf("Expected exactly one blog entry, got %d", strings.Count(newContent, "blog.apps.BlogConfig"))
	}

	// The entry lands inside INSTALLED_APPS, not in MIDDLEWARE.
	appsEnd := strings.Index(newContent, "]")
	if strings.Index(newContent, "blog.apps.BlogConfig") > appsEnd {
		t.Error("Entry inserted outside the INSTALLED_APPS list")
	}

	// Everything before the insertion is preserved.
	if !strings.Contains(newContent, "'main.apps.MainConfig',") {
		t.Error("Existing entry lost")
	}
}

func TestInsertAppEntryIdempotent(t *testing.T) {
	once, changed, err := InsertAppEntry(sampleSettings, "blog")
	if err != nil || !changed {
		t.Fatalf("First insert: changed=%v err=%v", changed, err)
	}

	twice, changed, err := InsertAppEntry(once, "blog")
	if err != nil {
		t.Fatalf("Second insert failed: %v", err)
	}
	if changed {
		t.Error("Second insert reported changed = true")
	}
	if twice != once {
		t.Error("Second insert modified content")
	}
	if strings.Count(twice, "blog.apps.BlogConfig") != 1 {
		t.Errorf("Expected exactly one entry after double insert, got %d",
			strings.Count(twice, "blog.apps.BlogConfig"))
	}
}

func TestInsertAppEntryAlreadyPresentBareName(t *testing.T) {
	content := strings.Replace(sampleSettings, "'main.apps.MainConfig',", "'blog',", 1)

	_, changed, err := InsertAppEntry(content, "blog")
	if err != nil {
		t.Fatalf("InsertAppEntry failed: %v", err)
	}
	if changed {
		t.Error("Bare-name registration not detected as already present")
	}
}

func TestInsertAppEntryUnderscoreName(t *testing.T) {
	newContent, changed, err := InsertAppEntry(sampleSettings, "user_data")
	if err != nil || !changed {
		t.Fatalf("InsertAppEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(newContent, "'user_data.apps.User_DataConfig',") {
		t.Errorf("Unexpected AppConfig class name:\n%s", newContent)
	}
}

func TestInsertAppEntryErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no INSTALLED_APPS", "DEBUG = True\n"},
		{"unclosed list", "INSTALLED_APPS = [\n    'django.contrib.admin',\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, changed, err := InsertAppEntry(tt.content, "blog")
			if err == nil {
				t.Error("Expected error, got nil")
			}
			if changed {
				t.Error("Expected changed = false on error")
			}
		})
	}
}

func TestInsertAppEntryCommentedEntryIgnored(t *testing.T) {
	content := strings.Replace(sampleSettings,
		"'main.apps.MainConfig',",
		"# 'blog.apps.BlogConfig',\n    'main.apps.MainConfig',", 1)

	_, changed, err := InsertAppEntry(content, "blog")
	if err != nil {
		t.Fatalf("InsertAppEntry failed: %v", err)
	}
	if !changed {
		t.Error("Commented-out entry treated as present")
	}
}

func TestInsertAppEntrySingleLineList(t *testing.T) {
	newContent, changed, err := InsertAppEntry("INSTALLED_APPS = []\n", "blog")
	if err != nil || !changed {
		t.Fatalf("InsertAppEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(newContent, "INSTALLED_APPS = ['blog.apps.BlogConfig',]") {
		t.Errorf("Entry not inserted into the empty single-line list:\n%s", newContent)
	}

	// The single-line shape also passes the pre-flight check.
	if err := CheckSettings("INSTALLED_APPS = []\n"); err != nil {
		t.Errorf("CheckSettings rejected a single-line list: %v", err)
	}
}

func TestInsertAppEntrySingleLineListWithEntries(t *testing.T) {
	content := "INSTALLED_APPS = ['django.contrib.admin']\n"

	once, changed, err := InsertAppEntry(content, "blog")
	if err != nil || !changed {
		t.Fatalf("InsertAppEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(once, "['django.contrib.admin', 'blog.apps.BlogConfig',]") {
		t.Errorf("Entry not appended inside the list:\n%s", once)
	}

	_, changed, err = InsertAppEntry(once, "blog")
	if err != nil {
		t.Fatalf("Second insert failed: %v", err)
	}
	if changed {
		t.Error("Entry on a single-line list not detected as already present")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blog", "Blog"},
		{"user_data", "User_Data"},
		{"a", "A"},
		{"x9y", "X9y"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
