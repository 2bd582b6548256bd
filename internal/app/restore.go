package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/project"
	"github.com/layertools/djinit/internal/store"
)

var (
	restoreFlagRole string
	restoreFlagList bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore configuration files from their latest backups",
	Long: `Copies the most recent backup of each configuration file over the live
file. Roles are restored independently: a missing backup or a write failure
for one file does not stop the other from being restored, and each outcome
is reported on its own line.

The newest backup is selected by filename; backup names carry a fixed-width
timestamp so directory order is creation order.`,
	Example: `  djinit restore                  # restore all configuration files
  djinit restore --role settings  # restore only the application registry
  djinit restore --list           # list available backups`,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreFlagRole, "role", "",
		"restore only this role (settings or urls)")
	restoreCmd.Flags().BoolVar(&restoreFlagList, "list", false,
		"list available backups instead of restoring")

	RootCmd.AddCommand(restoreCmd)
}

// selectedRoles returns the roles a restore invocation targets.
func selectedRoles() ([]project.Role, error) {
	if restoreFlagRole == "" {
		return project.Roles, nil
	}
	for _, role := range project.Roles {
		if string(role) == restoreFlagRole {
			return []project.Role{role}, nil
		}
	}
	return nil, fmt.Errorf("unknown role %q (valid roles: settings, urls)", restoreFlagRole)
}

func runRestore(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProjectConfig()
	if err != nil {
		return err
	}
	if err := requireExistingProject(cfg); err != nil {
		return err
	}

	roles, err := selectedRoles()
	if err != nil {
		return err
	}

	mgr := backup.New(cfg)

	if restoreFlagList {
		for _, role := range roles {
			snaps, err := mgr.List(role)
			if err != nil {
				return err
			}
			fmt.Printf("Backups for %s:\n", role)
			fmt.Print(output.RenderBackupTable(snaps))
			fmt.Println()
		}
		return nil
	}

	st, auditErr := openAudit(cfg)
	if auditErr != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", auditErr)
	} else {
		defer st.Close()
	}

	steps := output.NewSteps(os.Stdout)
	failures := 0
	for _, role := range roles {
		snap, err := mgr.Restore(role)
		if err != nil {
			if errors.Is(err, backup.ErrNoBackup) {
				steps.Warn("no backup exists for %s file, left unchanged", role)
			} else {
				steps.Fail("restore of %s file failed: %v", role, err)
			}
			failures++
			continue
		}
		steps.OK("restored %s file from %s", role, snap.Path)
		recordEvent(st, &store.Event{
			Operation: store.OpRestore,
			Role:      string(role),
			Detail:    snap.Path,
		})
	}

	if failures > 0 {
		return fmt.Errorf("restore incomplete: %d of %d file(s) not restored", failures, len(roles))
	}
	return nil
}
