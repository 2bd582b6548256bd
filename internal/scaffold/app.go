package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/layertools/djinit/internal/mutate"
)

// App renders the skeleton for one application under apps/<name>. The layout
// separates framework-free business logic (core/) from the framework-facing
// layers (services/, helpers/, api/, views), which is the convention the
// generated guide documents.
func (r *Renderer) App(projectName, appName string) error {
	appDir := filepath.Join(r.cfg.Root, "apps", appName)
	data := templateData{
		Project:  projectName,
		App:      appName,
		AppTitle: mutate.TitleCase(appName),
	}

	// Python package directories get an __init__.py; template and static
	// directories do not.
	pkgDirs := []string{
		"migrations",
		"core",
		"services",
		"helpers",
		"api",
		"tests",
		filepath.Join("tests", "test_services"),
		"management",
		filepath.Join("management", "commands"),
	}
	for _, dir := range pkgDirs {
		full := filepath.Join(appDir, dir)
		if err := r.createDir(full); err != nil {
			return err
		}
		rel := filepath.ToSlash(filepath.Join("apps", appName, dir, "__init__.py"))
		purpose := fmt.Sprintf("package init for %s", filepath.ToSlash(dir))
		if err := r.createFile(filepath.Join(full, "__init__.py"), pyInit(rel, purpose)); err != nil {
			return err
		}
	}

	assetDirs := []string{
		filepath.Join("templates", appName),
		filepath.Join("templates", appName, "components"),
		filepath.Join("static", appName, "css"),
		filepath.Join("static", appName, "js"),
		filepath.Join("static", appName, "images"),
	}
	for _, dir := range assetDirs {
		if err := r.createDir(filepath.Join(appDir, dir)); err != nil {
			return err
		}
	}

	if err := r.createFile(filepath.Join(appDir, "__init__.py"),
		pyInit(fmt.Sprintf("apps/%s/__init__.py", appName), fmt.Sprintf("package init for the %s application", appName))); err != nil {
		return err
	}

	files := []struct {
		path string
		tmpl string
	}{
		{filepath.Join(appDir, "apps.py"), appConfigTmpl},
		{filepath.Join(appDir, "models.py"), appModelsTmpl},
		{filepath.Join(appDir, "views.py"), appViewsTmpl},
		{filepath.Join(appDir, "urls.py"), appURLsTmpl},
		{filepath.Join(appDir, "admin.py"), appAdminTmpl},
		{filepath.Join(appDir, "forms.py"), appFormsTmpl},
		{filepath.Join(appDir, "constants.py"), appConstantsTmpl},
		{filepath.Join(appDir, "templates", appName, "index.html"), appIndexHTMLTmpl},
	}
	for _, f := range files {
		if err := r.createTemplated(f.path, f.tmpl, data); err != nil {
			return err
		}
	}

	return nil
}
