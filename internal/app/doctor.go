package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/mutate"
	"github.com/layertools/djinit/internal/project"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the project before running auto-update",
	Long: `Runs diagnostic checks on the project:

  • project skeleton is present
  • configuration files exist and their insertion points are locatable
  • backup directories are writable
  • audit database is accessible

A configuration file that fails its check here would also fail during
'add --auto-update'; fix it (or restore a backup) first.`,
	RunE: runDoctor,
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProjectConfig()
	if err != nil {
		return err
	}

	fmt.Println("Running djinit diagnostics...")
	fmt.Println()

	issues := 0

	// Check 1: project skeleton
	managePath := filepath.Join(cfg.Root, "manage.py")
	if _, err := os.Stat(managePath); err != nil {
		fmt.Println("✗ No project found at:", cfg.Root)
		fmt.Println("  Action: run 'djinit init' to scaffold one")
		issues++
	} else {
		fmt.Println("✓ Project found:", cfg.Root)
	}

	// Check 2: configuration files parse
	checks := map[project.Role]func(string) error{
		project.RoleSettings: mutate.CheckSettings,
		project.RoleURLs:     mutate.CheckURLs,
	}
	for _, role := range project.Roles {
		path, err := cfg.FileForRole(role)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("✗ Cannot read %s file: %v\n", role, err)
			issues++
			continue
		}
		if err := checks[role](string(content)); err != nil {
			fmt.Printf("✗ %s file %s is not editable: %v\n", role, path, err)
			fmt.Println("  Action: repair the file by hand or run 'djinit restore'")
			issues++
		} else {
			fmt.Printf("✓ %s file is editable: %s\n", role, path)
		}
	}

	// Check 3: backup directories writable, catalog sizes
	mgr := backup.New(cfg)
	for _, role := range project.Roles {
		dir, err := cfg.BackupDir(role)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("✗ Backup directory not writable: %s (%v)\n", dir, err)
			issues++
			continue
		}
		snaps, err := mgr.List(role)
		if err != nil {
			fmt.Printf("✗ Cannot list backups for %s: %v\n", role, err)
			issues++
			continue
		}
		fmt.Printf("✓ %d backup(s) for %s in %s\n", len(snaps), role, dir)
	}

	// Check 4: audit database
	if st, err := openAudit(cfg); err != nil {
		fmt.Println("✗ Audit database not accessible:", err)
		issues++
	} else {
		count, countErr := st.CountEvents("")
		st.Close()
		if countErr != nil {
			fmt.Println("✗ Audit database unreadable:", countErr)
			issues++
		} else {
			fmt.Printf("✓ Audit database OK (%d event(s) recorded)\n", count)
		}
	}

	fmt.Println()
	if issues > 0 {
		return fmt.Errorf("%d issue(s) found", issues)
	}
	fmt.Println("All checks passed.")
	return nil
}
