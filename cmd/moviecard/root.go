package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/moviecard/internal/config"
	"github.com/alexisbeaulieu97/moviecard/internal/logger"
	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

type rootFlags struct {
	verbose    bool
	configPath string
	theme      string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	renderOpts := &renderOptions{}

	cmd := &cobra.Command{
		Use:           "moviecard",
		Short:         "Render a movie information card in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, renderOpts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Movie record YAML file (defaults to the built-in sample)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme: light or dark (defaults to the terminal background)")
	addRenderFlags(cmd, renderOpts)

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newViewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setupLogger(cmd *cobra.Command) error {
	level := "info"
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	f.log = log
	return nil
}

// loadCard resolves the movie record, theme and card named by the persistent flags.
func (f *rootFlags) loadCard(operation string) (*moviecard.MovieCard, components.Theme, error) {
	data := moviecard.Sample()
	if f.configPath != "" {
		loaded, err := config.LoadMovie(f.configPath)
		if err != nil {
			return nil, components.Theme{}, newCommandError(operation, "loading movie file", err, "Check the YAML file against the documented fields (poster, title, length, language, rating, review_count).")
		}
		data = loaded
	}

	theme, err := components.ThemeByName(f.theme)
	if err != nil {
		return nil, components.Theme{}, newCommandError(operation, "selecting theme", err, "Use --theme light or --theme dark.")
	}

	card, err := moviecard.New(data, moviecard.WithLogger(f.log))
	if err != nil {
		return nil, components.Theme{}, newCommandError(operation, "building card", err, "Use one of the embedded poster resources.")
	}

	f.log.WithFields(map[string]any{"title": data.Title, "theme": theme.Name}).Debug("card ready")
	return card, theme, nil
}
