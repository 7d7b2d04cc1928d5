package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/sortdir/version"
)

// NewRootCmd creates and returns the root cobra command for the sortdir CLI.
// Run without a subcommand it sorts PATH, or the working directory.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortdir [PATH]",
		Short: "sortdir - sort a directory tree into category folders",
		Long: `sortdir moves every file under a directory into one of six folders
(Documents, Pictures, Videos, Audio, Applications, Miscellaneous) based on
the content type inferred from its name.

Before anything is moved the whole tree is saved to ~/<name>.bak.zip.
After sorting, every other top-level directory is deleted.

Use subcommands to perform different operations:
  - sort: Sort a directory (the default action)
  - count: Show what a sort would put in each folder
  - seed: Generate a random tree to experiment with
  - verify: Check a backup archive
  - config: Create or inspect the configuration file`,
		Version: version.GetFullVersion(),
		Args:    cobra.MaximumNArgs(1),
		RunE:    runSort,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (default ~/.config/sortdir/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().String("log-file", "", "Also append log records to this file")
	addSortFlags(rootCmd)

	groupSorting := "sorting"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupSorting,
		Title: "Sorting",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	sortCmd := NewSortCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()
	verifyCmd := NewVerifyCmd()
	configCmd := NewConfigCmd()
	versionCmd := NewVersionCmd()

	sortCmd.GroupID = groupSorting
	countCmd.GroupID = groupSorting
	seedCmd.GroupID = groupUtilities
	verifyCmd.GroupID = groupUtilities
	configCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
