package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/scaffold"
)

var guideFlagOutput string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Write the application development guide",
	Long: `Writes the development guide for the generated layered layout: where
business logic, services, and views belong, how applications are added, and
how configuration backups work.`,
	Example: `  djinit guide
  djinit guide --output docs/development.md`,
	RunE: runGuide,
}

func init() {
	guideCmd.Flags().StringVar(&guideFlagOutput, "output", "app_development_guide.md",
		"output file, relative to the project root")

	RootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	cfg, projectName, err := loadProjectConfig()
	if err != nil {
		return err
	}

	steps := output.NewSteps(os.Stdout)
	renderer := scaffold.New(cfg, steps)

	path := guideFlagOutput
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Root, path)
	}
	if err := renderer.DevGuide(path, projectName); err != nil {
		return err
	}
	fmt.Println("Development guide written.")
	return nil
}
