package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/clean"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/config"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/logging"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/prompt"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/scan"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/sweep"
)

var (
	// Global flags
	debug bool

	// Root command flags
	scanPath  string
	yesCargo  bool
	yesDioxus bool
	yesAll    bool
	dryRun    bool
	summary   bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "rust-cleanup",
	Short: "Clean build artifacts of Rust and Dioxus projects",
	Long: `rust-cleanup walks a directory tree and runs "cargo clean" in every
directory holding a Cargo.toml and "dx clean" in every directory holding a
Dioxus.toml. Each project is confirmed interactively unless one of the
--yes flags covers it. Declined projects are listed at the end.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), debug)
	},
	RunE: runSweep,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	rootCmd.Flags().StringVarP(&scanPath, "path", "p", config.DefaultPath, "Sets the starting directory for the search")
	rootCmd.Flags().BoolVar(&yesCargo, "yes-cargo", false, "Automatically clean non-Dioxus Rust projects without prompting")
	rootCmd.Flags().BoolVar(&yesDioxus, "yes-dioxus", false, "Automatically clean Dioxus projects without prompting")
	rootCmd.Flags().BoolVarP(&yesAll, "yes-all", "y", false, "Automatically clean all projects without prompting for a yes or a no")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the projects that would be cleaned without prompting or cleaning")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print counts and reclaimed disk space when done")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func optionsFromFlags() config.Options {
	return config.Options{
		Path: scanPath,
		AutoClean: project.AutoClean{
			YesCargo:  yesCargo,
			YesDioxus: yesDioxus,
			YesAll:    yesAll,
		},
		DryRun:  dryRun,
		Summary: summary,
		Debug:   debug,
	}.Normalize()
}

func runSweep(cmd *cobra.Command, args []string) error {
	opts := optionsFromFlags()

	runner := clean.NewRunner()
	runner.Stdin = cmd.InOrStdin()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	s := &sweep.Sweeper{
		Options:   opts,
		Confirmer: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Cleaner:   runner,
		Out:       cmd.OutOrStdout(),
	}

	if _, err := s.Run(cmd.Context()); err != nil {
		return scanError(opts.Path, err)
	}
	return nil
}

// scanError turns a walk failure into the message shown to the user.
func scanError(path string, err error) error {
	var rootErr *scan.RootError
	if errors.As(err, &rootErr) {
		return fmt.Errorf("cannot scan %s: %w", path, rootErr.Err)
	}
	return fmt.Errorf("cannot scan %s: %w", path, err)
}
