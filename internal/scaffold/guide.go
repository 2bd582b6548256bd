package scaffold

import (
	"fmt"
	"strings"

	"github.com/layertools/djinit/internal/mutate"
	"github.com/layertools/djinit/internal/project"
)

// ManualGuide writes a markdown document listing the configuration edits the
// operator must perform by hand after adding applications without
// --auto-update. Returns the path written.
func (r *Renderer) ManualGuide(path, projectName string, apps []string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Manual configuration for %s\n\n", projectName)
	sb.WriteString("The following applications were scaffolded but NOT registered.\n")
	sb.WriteString("Apply the edits below, or re-run `djinit add` with --auto-update.\n\n")

	sb.WriteString("## 1. Application registry (config/settings/base.py)\n\n")
	sb.WriteString("Append inside the INSTALLED_APPS list:\n\n```python\n")
	for _, app := range apps {
		fmt.Fprintf(&sb, "    %s\n", mutate.AppEntry(app))
	}
	sb.WriteString("```\n\n")

	sb.WriteString("## 2. URL routing (config/urls.py)\n\n")
	sb.WriteString("Append inside the urlpatterns list (make sure `include` is imported\n")
	sb.WriteString("from django.urls):\n\n```python\n")
	for _, app := range apps {
		fmt.Fprintf(&sb, "    %s\n", mutate.RouteEntry(app))
	}
	sb.WriteString("```\n\n")

	sb.WriteString("## Backups\n\n")
	sb.WriteString("When --auto-update is used, djinit snapshots each file before editing:\n\n")
	for _, role := range project.Roles {
		dir, err := r.cfg.BackupDir(role)
		if err != nil {
			return err
		}
		fmt.Fprintf(&sb, "- %s backups: %s\n", role, dir)
	}
	sb.WriteString("\nRestore the most recent snapshots with `djinit restore`.\n")

	return r.createFile(path, sb.String())
}

// DevGuide writes the application development guide for the generated
// layered layout. Returns via createFile semantics: an existing file is left
// in place with a warning.
func (r *Renderer) DevGuide(path, projectName string) error {
	content, err := render("dev-guide", devGuideTmpl, templateData{Project: projectName})
	if err != nil {
		return err
	}
	return r.createFile(path, content)
}

const devGuideTmpl = `# Application development guide — {{.Project}}

## Layered layout

Every application under apps/ follows the same layering:

- core/ — business logic with no framework imports. Algorithms, data
  processing, domain rules. Unit-testable in isolation.
- services/ — facade layer connecting core/ to the framework: transactions,
  model access, file handling.
- helpers/ — framework-aware utility functions.
- api/ — REST endpoints (serializers, viewsets).
- views.py / templates/ — presentation only; call services, never core
  directly.
- management/commands/ — custom manage.py commands.

Dependency direction is strictly downward: views -> services -> core.
core/ must never import from the layers above it.

## Adding an application

    djinit add -a shop --auto-update

Without --auto-update a manual guide is written instead and the
configuration files are left untouched.

## Configuration backups

djinit snapshots config/settings/base.py and config/urls.py before every
automatic edit. Snapshots live under config/app_append_backups/, named with
a sortable timestamp; the newest file is what ` + "`djinit restore`" + ` brings back.
Backups are never deleted automatically — prune the directory by hand once
a change is confirmed good.

## Testing

    python manage.py test apps

Service-layer tests go in apps/<name>/tests/test_services/; keep core/
tests framework-free so they run without a database.
`
