// Package app wires the djinit command-line interface: one file per
// subcommand, all registered on RootCmd.
package app

import (
	"github.com/spf13/cobra"
)

var (
	flagProject string

	// RootCmd is the root command for djinit.
	RootCmd = &cobra.Command{
		Use:   "djinit",
		Short: "Scaffold layered web projects with config backup/restore",
		Long: `djinit generates Django-convention project skeletons with a layered
application layout (core/services/views), registers new applications in the
project configuration, and keeps timestamped backups of every configuration
file it touches.

The two managed files are the application registry (config/settings/base.py,
INSTALLED_APPS) and the URL routing table (config/urls.py, urlpatterns).
Before any automatic edit, the file is snapshotted into
config/app_append_backups/; 'djinit restore' copies the newest snapshot back.

Examples:
  # Scaffold a new project with the default main application
  djinit init -p mysite

  # Scaffold with several applications
  djinit init -p mysite -a blog -a shop

  # Add an application to an existing project, updating config automatically
  djinit add -a billing --auto-update

  # Add without touching config; a manual-edit guide is written instead
  djinit add -a billing

  # Roll the configuration files back to their latest backups
  djinit restore

  # Show what djinit has done to this project
  djinit history`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "",
		"project name (default: current directory name)")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
