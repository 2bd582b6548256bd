package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/project"
	"github.com/layertools/djinit/internal/store"
	"github.com/layertools/djinit/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Back up configuration files when they are edited by hand",
	Long: `Watches the application registry and the URL routing table and creates
a backup whenever either file is saved outside of djinit. Runs in the
foreground until interrupted (Ctrl-C).

This makes manual configuration edits recoverable with 'djinit restore',
the same as automatic ones.`,
	RunE: runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProjectConfig()
	if err != nil {
		return err
	}
	if err := requireExistingProject(cfg); err != nil {
		return err
	}

	st, auditErr := openAudit(cfg)
	if auditErr != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", auditErr)
	} else {
		defer st.Close()
	}

	steps := output.NewSteps(os.Stdout)
	mgr := backup.New(cfg)

	w, err := watcher.New(cfg, mgr, func(role project.Role, snap *backup.Snapshot) {
		steps.OK("backed up %s file to %s", role, snap.Path)
		recordEvent(st, &store.Event{
			Operation: store.OpWatchBackup,
			Role:      string(role),
			Detail:    snap.Path,
		})
	})
	if err != nil {
		return err
	}

	if err := w.Start(); err != nil {
		return err
	}

	for _, role := range project.Roles {
		path, _ := cfg.FileForRole(role)
		fmt.Printf("Watching %s\n", path)
	}
	fmt.Println("Press Ctrl-C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping watcher.")
	return w.Stop()
}
