package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paycycle-dev/paycycle/internal/config"
)

func newInitCommand() *cobra.Command {
	var alternate bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new paycycle project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, alternate, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized paycycle project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&alternate, "alternate", false, "write the keyword rule set instead of the default policies")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing paycycle.yaml")

	return cmd
}

func runInit(dir string, alternate, force bool) error {
	for _, d := range []string{"import", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, defaultConfigFile)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	cfg := config.Default()
	if alternate {
		cfg = config.Alternate()
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Exports contain account data.
	gitignore := "import/\nlogs/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}
	return nil
}
