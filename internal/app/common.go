package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/layertools/djinit/internal/project"
	"github.com/layertools/djinit/internal/store"
)

// resolveProject determines the project root directory and project name from
// the --project flag. With no flag the current directory is the project;
// with a flag, the project lives in ./<name> unless the current directory is
// already named <name> (so the command works both inside and outside the
// project directory).
func resolveProject() (root, name string, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to determine working directory: %w", err)
	}

	if flagProject == "" {
		return cwd, filepath.Base(cwd), nil
	}
	if filepath.Base(cwd) == flagProject {
		return cwd, flagProject, nil
	}
	return filepath.Join(cwd, flagProject), flagProject, nil
}

// loadProjectConfig resolves the project and loads its configuration,
// applying .djinit.yaml overrides when present.
func loadProjectConfig() (*project.Config, string, error) {
	root, name, err := resolveProject()
	if err != nil {
		return nil, "", err
	}
	cfg, err := project.Load(root)
	if err != nil {
		return nil, "", err
	}
	return cfg, name, nil
}

// requireExistingProject verifies that root holds a scaffolded project.
func requireExistingProject(cfg *project.Config) error {
	managePath := filepath.Join(cfg.Root, "manage.py")
	if _, err := os.Stat(managePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s is not a djinit project (no manage.py found); run 'djinit init' first", cfg.Root)
		}
		return fmt.Errorf("failed to stat %s: %w", managePath, err)
	}
	return nil
}

// openAudit opens (creating if needed) the project audit database. Callers
// must Close the returned store.
func openAudit(cfg *project.Config) (*store.Store, error) {
	path := cfg.HistoryDBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory %s: %w", filepath.Dir(path), err)
	}
	st, err := store.New(path)
	if err != nil {
		return nil, err
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// recordEvent appends to the audit log, best effort: the audit trail must
// never fail the operation it describes.
func recordEvent(st *store.Store, e *store.Event) {
	if st == nil {
		return
	}
	if _, err := st.InsertEvent(e); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record history event: %v\n", err)
	}
}
