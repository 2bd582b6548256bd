// Package scaffold renders the project and application skeletons: directory
// trees, boilerplate source files, and the guidance documents that describe
// the manual configuration edits for the non-auto-update path.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/layertools/djinit/internal/mutate"
	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/project"
)

// Renderer writes skeleton files under a project root. Existing files are
// never overwritten; a skip is reported and scaffolding continues, so the
// tool can be re-run against a partially built tree.
type Renderer struct {
	cfg   *project.Config
	steps *output.Steps
}

// New creates a Renderer for the given project.
func New(cfg *project.Config, steps *output.Steps) *Renderer {
	return &Renderer{cfg: cfg, steps: steps}
}

// templateData is the substitution context for boilerplate templates.
type templateData struct {
	Project  string
	App      string
	AppTitle string
	Apps     []string
}

// render executes a boilerplate template with data.
func render(name, tmpl string, data templateData) (string, error) {
	t, err := template.New(name).Funcs(template.FuncMap{"title": mutate.TitleCase}).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return sb.String(), nil
}

// createDir creates dir (and parents) if needed.
func (r *Renderer) createDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	r.steps.OK("created directory: %s", dir)
	return nil
}

// createFile writes content to path unless the file already exists.
func (r *Renderer) createFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		r.steps.Warn("file already exists, skipping: %s", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	r.steps.OK("created file: %s", path)
	return nil
}

// createTemplated renders tmpl and writes it to path.
func (r *Renderer) createTemplated(path, tmpl string, data templateData) error {
	content, err := render(filepath.Base(path), tmpl, data)
	if err != nil {
		return err
	}
	return r.createFile(path, content)
}

// pyInit returns the contents of a package __init__.py with a purpose header.
func pyInit(rel, purpose string) string {
	return fmt.Sprintf("\"\"\"\nFile: %s\nPurpose: %s\n\"\"\"\n", rel, purpose)
}
