package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/moviecard/internal/assets"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the embedded image resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "moviecard %s (commit %s, built %s)\n", version, commit, date)
			fmt.Fprintf(out, "assets: %s\n", strings.Join(assets.IDs(), ", "))
			return nil
		},
	}

	return cmd
}
