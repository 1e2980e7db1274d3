package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/moviecard/internal/tui"
)

// runProgram is swapped in tests to avoid taking over the terminal.
var runProgram = func(cmd *cobra.Command, model tea.Model) error {
	_, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	).Run()
	return err
}

// interactive reports whether the command is attached to a terminal.
var interactive = func(cmd *cobra.Command) bool {
	return isTerminal(cmd.InOrStdin())
}

func newViewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the movie card in an interactive viewer",
		Long:  `Open the movie card full screen. The card follows the window size; press ? for key help and q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags)
		},
	}

	return cmd
}

func runView(cmd *cobra.Command, flags *rootFlags) error {
	if !interactive(cmd) {
		return newCommandError("view", "checking terminal", errors.New("stdin is not a terminal"), "Use 'moviecard render' for non-interactive output.")
	}

	card, theme, err := flags.loadCard("view")
	if err != nil {
		return err
	}

	flags.log.Info("launching viewer")
	if err := runProgram(cmd, tui.NewModel(card, theme, flags.log)); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}
	return nil
}
