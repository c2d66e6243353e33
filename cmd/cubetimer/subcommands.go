package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/cubetimer/internal/config"
	"github.com/jask/cubetimer/internal/scramble"
	"github.com/jask/cubetimer/internal/service"
)

func scrambleCmd() *cobra.Command {
	var puzzle, length, count int
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Print scrambles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length == 0 {
				length = scramble.DefaultLength(puzzle)
			}
			if err := scramble.CheckLength(length); err != nil {
				return err
			}
			g := scramble.NewGenerator(nil)
			for i := 0; i < count; i++ {
				s, err := g.Generate(puzzle, length)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&puzzle, "puzzle", "p", 3, "Cube size (2-7)")
	cmd.Flags().IntVarP(&length, "length", "n", 0, "Moves per scramble (default depends on the puzzle)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of scrambles")
	return cmd
}

func statsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats SESSION",
		Short: "Print a session's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), *f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()
			svc, err := openExisting(cmd, e, args[0])
			if err != nil {
				return err
			}
			cur := svc.Current()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%dx%d, %d moves)\n", cur.Name, cur.Puzzle, cur.Puzzle, cur.ScrambleLength)
			fmt.Fprintln(out, strings.Join(svc.Summary().Lines(), "\n"))
			return nil
		},
	}
}

func exportCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "export SESSION PATH",
		Short: "Write a session's solves as tab-separated values",
		Long:  "Writes one line per solve: time, average of 5, average of 12, scramble. PATH - writes to stdout.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), *f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()
			svc, err := openExisting(cmd, e, args[0])
			if err != nil {
				return err
			}
			if args[1] == "-" {
				return svc.ExportTSV(cmd.OutOrStdout())
			}
			file, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := svc.ExportTSV(file); err != nil {
				_ = file.Close()
				return err
			}
			return file.Close()
		},
	}
}

func resetCmd(f *flags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every session and solve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}
			e, err := setup(cmd.Context(), *f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()
			if err := (&service.MaintenanceService{DB: e.db}).Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all sessions deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}

func configCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(f.Config)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; pass --force to overwrite", path)
			}
			cfg, err := config.Defaults()
			if err != nil {
				return err
			}
			if f.Config == "" {
				err = config.Save(cfg)
			} else {
				err = config.SaveFile(cfg, path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

// openExisting opens a session that must already exist.
func openExisting(cmd *cobra.Command, e *env, name string) (*service.SessionService, error) {
	svc := e.sessions()
	sess, err := svc.Sessions.ByName(cmd.Context(), name)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("no session named %q", name)
	}
	if err := svc.Open(cmd.Context(), name); err != nil {
		return nil, err
	}
	return svc, nil
}
