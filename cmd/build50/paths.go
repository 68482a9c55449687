package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/build50/build50/internal/config"
)

func newPathsCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show where configuration, state and logs live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(rootFlags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			s := app.Settings
			configFile := s.Source
			if configFile == "" {
				configFile = filepath.Join(config.DefaultDir(), "config.yaml") + " (not found, using defaults)"
			}
			storagePath := s.Storage.Path
			if s.Storage.Driver == config.DriverMemory {
				storagePath = "(in memory)"
			}
			catalogPath := s.Catalog.Path
			if catalogPath == "" {
				catalogPath = "(built in)"
			}
			logPath := s.Log.Path
			if logPath == "" {
				logPath = "(disabled)"
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "config\t%s\n", configFile)
			fmt.Fprintf(writer, "storage\t%s (%s)\n", storagePath, s.Storage.Driver)
			fmt.Fprintf(writer, "catalog\t%s\n", catalogPath)
			fmt.Fprintf(writer, "log\t%s\n", logPath)
			return writer.Flush()
		},
	}
}
