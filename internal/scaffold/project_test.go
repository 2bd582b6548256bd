package scaffold

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layertools/djinit/internal/mutate"
	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/project"
)

func newTestRenderer(t *testing.T) (*Renderer, *project.Config) {
	t.Helper()
	cfg := project.Default(t.TempDir())
	return New(cfg, output.NewSteps(io.Discard)), cfg
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestProjectSkeleton(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := r.Project("mysite", []string{"main", "blog"}); err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	expected := []string{
		"manage.py",
		filepath.Join("config", "__init__.py"),
		filepath.Join("config", "settings", "__init__.py"),
		filepath.Join("config", "settings", "base.py"),
		filepath.Join("config", "settings", "local.py"),
		filepath.Join("config", "settings", "production.py"),
		filepath.Join("config", "urls.py"),
		filepath.Join("config", "wsgi.py"),
		filepath.Join("config", "asgi.py"),
		filepath.Join("apps", "__init__.py"),
		filepath.Join("templates", "base.html"),
		filepath.Join("requirements", "base.txt"),
		filepath.Join("requirements", "local.txt"),
		filepath.Join("requirements", "production.txt"),
		".gitignore",
		".env.example",
		"README.md",
	}
	for _, rel := range expected {
		if _, err := os.Stat(filepath.Join(cfg.Root, rel)); err != nil {
			t.Errorf("Expected file missing: %s (%v)", rel, err)
		}
	}

	// Both initial applications are scaffolded.
	for _, app := range []string{"main", "blog"} {
		if _, err := os.Stat(filepath.Join(cfg.Root, "apps", app, "apps.py")); err != nil {
			t.Errorf("Application %s not scaffolded: %v", app, err)
		}
	}
}

func TestProjectRegistersInitialApps(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := r.Project("mysite", []string{"main", "blog"}); err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	settingsPath, _ := cfg.FileForRole(project.RoleSettings)
	settings := mustRead(t, settingsPath)
	for _, want := range []string{
		"'django.contrib.admin',",
		"'main.apps.MainConfig',",
		"'blog.apps.BlogConfig',",
	} {
		if !strings.Contains(settings, want) {
			t.Errorf("Settings missing %q", want)
		}
	}
	// The generated registry is immediately editable by the mutator.
	if err := mutate.CheckSettings(settings); err != nil {
		t.Errorf("Generated settings rejected by mutator: %v", err)
	}

	urlsPath, _ := cfg.FileForRole(project.RoleURLs)
	urls := mustRead(t, urlsPath)
	if !strings.Contains(urls, "path('', include('main.urls')),") {
		t.Error("main not mounted on the root URL")
	}
	if !strings.Contains(urls, "path('blog/', include('blog.urls')),") {
		t.Error("blog route missing")
	}
	if err := mutate.CheckURLs(urls); err != nil {
		t.Errorf("Generated urls rejected by mutator: %v", err)
	}
}

func TestProjectSettingsPutAppsOnPath(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := r.Project("mysite", []string{"main"}); err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	settingsPath, _ := cfg.FileForRole(project.RoleSettings)
	settings := mustRead(t, settingsPath)

	// Registry entries like 'main.apps.MainConfig' resolve relative to
	// apps/, so base.py must put that directory on the Python path.
	if !strings.Contains(settings, "import sys") {
		t.Error("base.py missing sys import")
	}
	if !strings.Contains(settings, "sys.path.append(str(BASE_DIR / 'apps'))") {
		t.Errorf("base.py does not add apps/ to the Python path:\n%s", settings)
	}
}

func TestProjectLocalSettingsEnableDevTooling(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := r.Project("mysite", []string{"main"}); err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	// Everything requirements/local.txt installs is enabled in local.py.
	local := mustRead(t, filepath.Join(cfg.Root, "config", "settings", "local.py"))
	reqs := mustRead(t, filepath.Join(cfg.Root, "requirements", "local.txt"))
	for pkg, app := range map[string]string{
		"django-debug-toolbar": "'debug_toolbar',",
		"django-extensions":    "'django_extensions',",
	} {
		if !strings.Contains(reqs, pkg) {
			t.Errorf("local.txt missing %s", pkg)
		}
		if !strings.Contains(local, app) {
			t.Errorf("local.py does not enable %s", pkg)
		}
	}
	if !strings.Contains(local, "'debug_toolbar.middleware.DebugToolbarMiddleware'") {
		t.Error("local.py missing the debug toolbar middleware")
	}

	urlsPath, _ := cfg.FileForRole(project.RoleURLs)
	urls := mustRead(t, urlsPath)
	if !strings.Contains(urls, "path('__debug__/', include(debug_toolbar.urls))") {
		t.Error("urls.py missing the debug toolbar mount")
	}
	// The extra DEBUG-only block must not confuse route insertion.
	if err := mutate.CheckURLs(urls); err != nil {
		t.Errorf("Generated urls rejected by mutator: %v", err)
	}
}

func TestProjectRefusesExisting(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := os.WriteFile(filepath.Join(cfg.Root, "manage.py"), []byte("# existing"), 0644); err != nil {
		t.Fatalf("Failed to plant manage.py: %v", err)
	}

	if err := r.Project("mysite", []string{"main"}); err == nil {
		t.Error("Project overwrote an existing project")
	}
}

func TestAppSkeleton(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := r.App("mysite", "billing"); err != nil {
		t.Fatalf("App failed: %v", err)
	}

	appDir := filepath.Join(cfg.Root, "apps", "billing")

	files := []string{
		"__init__.py",
		"apps.py",
		"models.py",
		"views.py",
		"urls.py",
		"admin.py",
		"forms.py",
		"constants.py",
		filepath.Join("migrations", "__init__.py"),
		filepath.Join("core", "__init__.py"),
		filepath.Join("services", "__init__.py"),
		filepath.Join("helpers", "__init__.py"),
		filepath.Join("api", "__init__.py"),
		filepath.Join("tests", "__init__.py"),
		filepath.Join("tests", "test_services", "__init__.py"),
		filepath.Join("management", "commands", "__init__.py"),
		filepath.Join("templates", "billing", "index.html"),
	}
	for _, rel := range files {
		if _, err := os.Stat(filepath.Join(appDir, rel)); err != nil {
			t.Errorf("Expected file missing: %s (%v)", rel, err)
		}
	}

	dirs := []string{
		filepath.Join("templates", "billing", "components"),
		filepath.Join("static", "billing", "css"),
		filepath.Join("static", "billing", "js"),
		filepath.Join("static", "billing", "images"),
	}
	for _, rel := range dirs {
		info, err := os.Stat(filepath.Join(appDir, rel))
		if err != nil || !info.IsDir() {
			t.Errorf("Expected directory missing: %s", rel)
		}
	}

	appsPy := mustRead(t, filepath.Join(appDir, "apps.py"))
	if !strings.Contains(appsPy, "class BillingConfig(AppConfig):") {
		t.Errorf("apps.py missing AppConfig class:\n%s", appsPy)
	}
	if !strings.Contains(appsPy, "name = 'billing'") {
		t.Errorf("apps.py missing app name:\n%s", appsPy)
	}
}

func TestAppSkeletonDoesNotOverwrite(t *testing.T) {
	r, cfg := newTestRenderer(t)

	if err := r.App("mysite", "billing"); err != nil {
		t.Fatalf("App failed: %v", err)
	}

	modelsPath := filepath.Join(cfg.Root, "apps", "billing", "models.py")
	if err := os.WriteFile(modelsPath, []byte("# operator edits\n"), 0644); err != nil {
		t.Fatalf("Failed to edit models.py: %v", err)
	}

	if err := r.App("mysite", "billing"); err != nil {
		t.Fatalf("Re-run failed: %v", err)
	}
	if got := mustRead(t, modelsPath); got != "# operator edits\n" {
		t.Errorf("Re-run overwrote an existing file: %q", got)
	}
}

func TestManualGuide(t *testing.T) {
	r, cfg := newTestRenderer(t)

	path := filepath.Join(cfg.Root, "manual_config_guide.md")
	if err := r.ManualGuide(path, "mysite", []string{"billing", "main"}); err != nil {
		t.Fatalf("ManualGuide failed: %v", err)
	}

	guide := mustRead(t, path)
	for _, want := range []string{
		"'billing.apps.BillingConfig',",
		"path('billing/', include('billing.urls')),",
		"path('', include('main.urls')),",
		"base_backups",
		"urls_backups",
	} {
		if !strings.Contains(guide, want) {
			t.Errorf("Guide missing %q", want)
		}
	}
}

func TestDevGuide(t *testing.T) {
	r, cfg := newTestRenderer(t)

	path := filepath.Join(cfg.Root, "app_development_guide.md")
	if err := r.DevGuide(path, "mysite"); err != nil {
		t.Fatalf("DevGuide failed: %v", err)
	}

	guide := mustRead(t, path)
	for _, want := range []string{"mysite", "core/", "services/", "djinit restore"} {
		if !strings.Contains(guide, want) {
			t.Errorf("Guide missing %q", want)
		}
	}
}
