package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/browse"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/config"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/logging"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/sweep"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/ui"
)

var (
	scanJSON        bool
	scanInteractive bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List detected projects without cleaning",
	Long:  "Walk the tree and list every Rust and Dioxus project with the command that would clean it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := config.DefaultPath
		if len(args) == 1 {
			root = args[0]
		}
		root = config.Options{Path: root}.Normalize().Path

		targets, err := sweep.List(cmd.Context(), root)
		if err != nil {
			return scanError(root, err)
		}

		out := cmd.OutOrStdout()
		switch {
		case scanJSON:
			return browse.PrintJSON(out, targets)

		case scanInteractive && ui.IsTerminal(out) && ui.IsTerminal(cmd.InOrStdin()):
			selected, err := browse.Run(targets, cmd.InOrStdin(), out)
			if err != nil {
				return err
			}
			if selected != "" {
				fmt.Fprintln(out, selected)
			}
			return nil

		default:
			if scanInteractive {
				logging.New("cmd").Debug("not a terminal, printing plain listing")
			}
			return browse.PrintStatic(out, targets)
		}
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output projects as JSON")
	scanCmd.Flags().BoolVarP(&scanInteractive, "interactive", "i", false, "Browse projects in an interactive table")
}
