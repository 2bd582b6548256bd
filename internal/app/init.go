package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/scaffold"
	"github.com/layertools/djinit/internal/store"
)

var initFlagApps []string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new project",
	Long: `Creates the full project skeleton: configuration package with split
settings (base/local/production), URL routing, WSGI/ASGI entry points,
requirements files, and one application skeleton per -a flag (default: main).

The generated registry and routing files already list the initial
applications, so no configuration mutation or backup is involved.`,
	Example: `  djinit init -p mysite
  djinit init -p mysite -a blog -a shop`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringArrayVarP(&initFlagApps, "app", "a", nil,
		"application to scaffold (repeatable; default: main)")

	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, projectName, err := loadProjectConfig()
	if err != nil {
		return err
	}

	apps := initFlagApps
	if len(apps) == 0 {
		apps = cfg.DefaultApps
	}

	// Name validation happens before any file is written.
	for _, app := range apps {
		if err := cfg.ValidateAppName(app); err != nil {
			return err
		}
	}

	steps := output.NewSteps(os.Stdout)
	renderer := scaffold.New(cfg, steps)

	fmt.Printf("Initializing project %s in %s\n\n", projectName, cfg.Root)
	if err := renderer.Project(projectName, apps); err != nil {
		return err
	}

	if st, auditErr := openAudit(cfg); auditErr != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", auditErr)
	} else {
		defer st.Close()
		for _, app := range apps {
			recordEvent(st, &store.Event{Operation: store.OpInit, App: app, Detail: "project scaffold"})
		}
	}

	fmt.Println()
	fmt.Printf("Project %s created with applications: %v\n", projectName, apps)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", projectName)
	fmt.Println("  python -m venv .venv && . .venv/bin/activate")
	fmt.Println("  pip install -r requirements/local.txt")
	fmt.Println("  python manage.py migrate && python manage.py runserver")
	return nil
}
