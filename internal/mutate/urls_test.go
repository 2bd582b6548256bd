package mutate

import (
	"strings"
	"testing"
)

const sampleURLs = `"""
File: config/urls.py
"""

from django.contrib import admin
from django.urls import path, include
from django.conf import settings

urlpatterns = [
    path('admin/', admin.site.urls),
    path('', include('main.urls')),
]
`

func TestInsertRouteEntry(t *testing.T) {
	newContent, changed, err := InsertRouteEntry(sampleURLs, "blog")
	if err != nil {
		t.Fatalf("InsertRouteEntry failed: %v", err)
	}
	if !changed {
		t.Fatal("Expected changed = true")
	}
	if !strings.Contains(newContent, "    path('blog/', include('blog.urls')),") {
		t.Errorf("Route entry missing or misindented:\n%s", newContent)
	}
	if !strings.Contains(newContent, "path('admin/', admin.site.urls),") {
		t.Error("Existing route lost")
	}
}

func TestInsertRouteEntryIdempotent(t *testing.T) {
	once, changed, err := InsertRouteEntry(sampleURLs, "blog")
	if err != nil || !changed {
		t.Fatalf("First insert: changed=%v err=%v", changed, err)
	}

	twice, changed, err := InsertRouteEntry(once, "blog")
	if err != nil {
		t.Fatalf("Second insert failed: %v", err)
	}
	if changed {
		t.Error("Second insert reported changed = true")
	}
	if twice != once {
		t.Error("Second insert modified content")
	}
}

func TestInsertRouteEntryMainAlreadyMounted(t *testing.T) {
	_, changed, err := InsertRouteEntry(sampleURLs, "main")
	if err != nil {
		t.Fatalf("InsertRouteEntry failed: %v", err)
	}
	if changed {
		t.Error("main route inserted although already mounted on the root URL")
	}
}

func TestInsertRouteEntryMainOnEmptyPatterns(t *testing.T) {
	content := `from django.urls import path

urlpatterns = [
    path('health/', lambda r: None),
]
`
	newContent, changed, err := InsertRouteEntry(content, "main")
	if err != nil || !changed {
		t.Fatalf("InsertRouteEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(newContent, "path('', include('main.urls')),") {
		t.Errorf("main not mounted on the root URL:\n%s", newContent)
	}
}

func TestInsertRouteEntryExtendsPathImport(t *testing.T) {
	content := `from django.contrib import admin
from django.urls import path

urlpatterns = [
    path('admin/', admin.site.urls),
]
`
	newContent, changed, err := InsertRouteEntry(content, "blog")
	if err != nil || !changed {
		t.Fatalf("InsertRouteEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(newContent, "from django.urls import path, include") {
		t.Errorf("include not added to existing path import:\n%s", newContent)
	}
	if strings.Count(newContent, "from django.urls import") != 1 {
		t.Errorf("Duplicate django.urls import:\n%s", newContent)
	}
}

func TestInsertRouteEntryAddsImportLine(t *testing.T) {
	content := `from django.contrib import admin

urlpatterns = [
    path('admin/', admin.site.urls),
]
`
	newContent, changed, err := InsertRouteEntry(content, "blog")
	if err != nil || !changed {
		t.Fatalf("InsertRouteEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(newContent, "from django.urls import path, include") {
		t.Errorf("Missing include import:\n%s", newContent)
	}
	// The new import goes in front of the first django import.
	if strings.Index(newContent, "from django.urls import path, include") >
		strings.Index(newContent, "from django.contrib import admin") {
		t.Errorf("Import inserted after existing django imports:\n%s", newContent)
	}
}

func TestInsertRouteEntrySingleLinePatterns(t *testing.T) {
	content := `from django.urls import path, include

urlpatterns = []
`
	newContent, changed, err := InsertRouteEntry(content, "blog")
	if err != nil || !changed {
		t.Fatalf("InsertRouteEntry: changed=%v err=%v", changed, err)
	}
	if !strings.Contains(newContent, "urlpatterns = [path('blog/', include('blog.urls')),]") {
		t.Errorf("Route not inserted into the single-line list:\n%s", newContent)
	}
}

func TestInsertRouteEntryErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no urlpatterns", "DEBUG = True\n"},
		{"unclosed list", "from django.urls import path, include\nurlpatterns = [\n    path('x/', None),\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, changed, err := InsertRouteEntry(tt.content, "blog")
			if err == nil {
				t.Error("Expected error, got nil")
			}
			if changed {
				t.Error("Expected changed = false on error")
			}
		})
	}
}
