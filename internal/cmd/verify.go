package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dendrascience/sortdir/backup"
)

// NewVerifyCmd creates and returns the verify subcommand for the sortdir CLI.
// It checks a backup archive before it is relied on for a restore.
func NewVerifyCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "verify ARCHIVE",
		Short: "Verify a backup archive",
		Long: `Verify a sortdir backup archive by reading every entry to the end,
which checks each entry's CRC-32.

Exits non-zero if the archive cannot be opened or any entry is damaged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0], verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runVerify(cmd *cobra.Command, path string, verbose bool) error {
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Verifying archive: %s\n", path)
	}
	report, err := backup.Verify(path)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}

	if len(report.Problems) > 0 {
		fmt.Fprintf(out, "Archive %s has %d errors:\n", path, len(report.Problems))
		for _, p := range report.Problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}

	fmt.Fprintf(out, "\nVerification complete:\n")
	fmt.Fprintf(out, "  SHA-256: %s\n", report.SHA256)
	fmt.Fprintf(out, "  Files: %d\n", report.Files)
	fmt.Fprintf(out, "  Directories: %d\n", report.Dirs)
	fmt.Fprintf(out, "  Uncompressed size: %s\n", humanize.Bytes(uint64(report.UncompressedSize)))
	fmt.Fprintf(out, "  Total errors: %d\n", len(report.Problems))

	if !report.OK() {
		return fmt.Errorf("archive %s failed verification", path)
	}
	return nil
}
