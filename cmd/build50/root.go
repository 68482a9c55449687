package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "build50",
		Short:         "Build50 browses the Build50 site from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the site on the home page
			if len(args) == 0 {
				return runBrowse(cmd, flags, browseOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a config file (default ~/.build50/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newAddOnsCmd(flags))
	cmd.AddCommand(newPackagesCmd(flags))
	cmd.AddCommand(newEnquiriesCmd(flags))
	cmd.AddCommand(newPathsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
