package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = "dev"
)

// flags shared by every command.
type flags struct {
	Session string
	Config  string
	Debug   bool
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "cubetimer",
		Short: "Speedcubing timer for the terminal",
		Long: `cubetimer times Rubik's cube solves in the terminal, generates WCA-style
scrambles for 2x2 through 7x7, and keeps per-session statistics.`,
		Example: `  # Start the timer and pick a session at the prompt
  cubetimer

  # Go straight to a session
  cubetimer --session oh

  # Print five 4x4 scrambles
  cubetimer scramble -p 4 -c 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cmd.Context(), f)
		},
	}
	root.PersistentFlags().StringVarP(&f.Config, "config", "C", "", "Path to config.toml")
	root.PersistentFlags().BoolVarP(&f.Debug, "debug", "d", false, "Enable debug logging")
	root.Flags().StringVarP(&f.Session, "session", "s", "", "Open this session without prompting")

	root.AddCommand(scrambleCmd(), statsCmd(&f), exportCmd(&f), resetCmd(&f), configCmd(&f))
	return root
}
