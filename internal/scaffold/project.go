package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Project renders the full project skeleton for projectName with the given
// initial applications. The project root is taken from the Renderer's
// config. Fails if the root already contains a manage.py, so a re-run
// against an existing project is refused rather than half-merged.
func (r *Renderer) Project(projectName string, apps []string) error {
	root := r.cfg.Root

	managePath := filepath.Join(root, "manage.py")
	if _, err := os.Stat(managePath); err == nil {
		return fmt.Errorf("project already exists: %s is present", managePath)
	}

	data := templateData{Project: projectName, Apps: apps}

	dirs := []string{
		filepath.Join(root, "config", "settings"),
		filepath.Join(root, "apps"),
		filepath.Join(root, "templates"),
		filepath.Join(root, "static", "css"),
		filepath.Join(root, "static", "js"),
		filepath.Join(root, "requirements"),
		filepath.Join(root, "media"),
	}
	for _, dir := range dirs {
		if err := r.createDir(dir); err != nil {
			return err
		}
	}

	files := []struct {
		path string
		tmpl string
	}{
		{filepath.Join(root, "manage.py"), manageTmpl},
		{filepath.Join(root, "config", "settings", "base.py"), settingsBaseTmpl},
		{filepath.Join(root, "config", "settings", "local.py"), settingsLocalTmpl},
		{filepath.Join(root, "config", "settings", "production.py"), settingsProductionTmpl},
		{filepath.Join(root, "config", "urls.py"), urlsTmpl},
		{filepath.Join(root, "config", "wsgi.py"), wsgiTmpl},
		{filepath.Join(root, "config", "asgi.py"), asgiTmpl},
		{filepath.Join(root, "templates", "base.html"), baseHTMLTmpl},
		{filepath.Join(root, ".env.example"), envExampleTmpl},
		{filepath.Join(root, "README.md"), readmeTmpl},
	}
	for _, f := range files {
		if err := r.createTemplated(f.path, f.tmpl, data); err != nil {
			return err
		}
	}

	inits := []struct {
		path    string
		rel     string
		purpose string
	}{
		{filepath.Join(root, "config", "__init__.py"), "config/__init__.py", "configuration package"},
		{filepath.Join(root, "config", "settings", "__init__.py"), "config/settings/__init__.py", "settings package"},
		{filepath.Join(root, "apps", "__init__.py"), "apps/__init__.py", "applications package"},
	}
	for _, f := range inits {
		if err := r.createFile(f.path, pyInit(f.rel, f.purpose)); err != nil {
			return err
		}
	}

	plain := []struct {
		path    string
		content string
	}{
		{filepath.Join(root, "requirements", "base.txt"), requirementsBase},
		{filepath.Join(root, "requirements", "local.txt"), requirementsLocal},
		{filepath.Join(root, "requirements", "production.txt"), requirementsProduction},
		{filepath.Join(root, ".gitignore"), gitignoreContent},
	}
	for _, f := range plain {
		if err := r.createFile(f.path, f.content); err != nil {
			return err
		}
	}

	for _, app := range apps {
		if err := r.App(projectName, app); err != nil {
			return err
		}
	}

	return nil
}
