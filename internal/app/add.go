package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/mutate"
	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/project"
	"github.com/layertools/djinit/internal/scaffold"
	"github.com/layertools/djinit/internal/store"
)

const manualGuideName = "manual_config_guide.md"

var (
	addFlagApps       []string
	addFlagAutoUpdate bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add applications to an existing project",
	Long: `Scaffolds one application skeleton per -a flag inside an existing
project.

Without --auto-update the configuration files are left untouched and a
guidance document listing the required manual edits is written to the
project root.

With --auto-update the application registry and the URL routing table are
edited in place. Each file is snapshotted into config/app_append_backups/
before it is written; 'djinit restore' undoes the edits. A failure while
updating one file is reported but does not roll back files already updated —
check the report and restore manually if needed.`,
	Example: `  djinit add -a billing
  djinit add -a billing -a invoices --auto-update
  djinit add -p mysite -a billing --auto-update`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringArrayVarP(&addFlagApps, "app", "a", nil,
		"application to add (repeatable, required)")
	addCmd.Flags().BoolVar(&addFlagAutoUpdate, "auto-update", false,
		"update settings and URL configuration automatically, with backups")

	RootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(addFlagApps) == 0 {
		return fmt.Errorf("at least one -a/--app is required")
	}

	cfg, projectName, err := loadProjectConfig()
	if err != nil {
		return err
	}
	if err := requireExistingProject(cfg); err != nil {
		return err
	}
	for _, app := range addFlagApps {
		if err := cfg.ValidateAppName(app); err != nil {
			return err
		}
	}

	steps := output.NewSteps(os.Stdout)
	renderer := scaffold.New(cfg, steps)

	st, auditErr := openAudit(cfg)
	if auditErr != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", auditErr)
	} else {
		defer st.Close()
	}

	for _, app := range addFlagApps {
		fmt.Printf("Adding application %s\n", app)
		if err := renderer.App(projectName, app); err != nil {
			return err
		}
		recordEvent(st, &store.Event{Operation: store.OpAddApp, App: app, Detail: "application scaffold"})
	}

	if !addFlagAutoUpdate {
		guidePath := filepath.Join(cfg.Root, manualGuideName)
		if err := renderer.ManualGuide(guidePath, projectName, addFlagApps); err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Configuration files were not modified. Manual edits are listed in %s\n", guidePath)
		fmt.Println("Re-run with --auto-update to apply them automatically.")
		return nil
	}

	mutator := mutate.New(cfg, backup.New(cfg))

	failures := 0
	for _, app := range addFlagApps {
		for _, role := range project.Roles {
			result, err := mutator.RegisterApp(role, app)
			if err != nil {
				// Report and continue: earlier successful updates stay
				// committed, there is no cross-file transaction.
				steps.Fail("update of %s file for %s failed: %v", role, app, err)
				failures++
				continue
			}

			recordEvent(st, &store.Event{
				Operation: store.OpBackup,
				App:       app,
				Role:      string(role),
				Detail:    result.Backup.Path,
			})

			if !result.Changed {
				steps.Warn("%s already registered in %s file, skipped", app, role)
				continue
			}

			steps.OK("added to %s file: %s", role, result.Entry)
			recordEvent(st, &store.Event{
				Operation: store.OpAutoUpdate,
				App:       app,
				Role:      string(role),
				Detail:    result.Entry,
			})
		}
	}

	fmt.Println()
	if failures > 0 {
		return fmt.Errorf("%d configuration update(s) failed; completed updates were kept, use 'djinit restore' to roll back", failures)
	}
	fmt.Println("Configuration updated. Backups are in", filepath.Join(cfg.Root, cfg.BackupRoot))
	fmt.Println("Use 'djinit restore' to revert to the pre-update configuration.")
	return nil
}
