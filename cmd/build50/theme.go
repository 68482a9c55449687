package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/build50/build50/internal/app/theme"
	"github.com/build50/build50/internal/config"
	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the saved colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "command.theme.show", nil)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "command.theme.show", nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "command.theme.toggle", func(ctx context.Context, store *theme.Store) site.ThemePreference {
				return store.Toggle(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Save a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(site.ThemeLight), string(site.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, ok := site.ParseTheme(args[0])
			if !ok {
				return newCommandError("set theme", fmt.Sprintf("theme %q", args[0]),
					siteerrors.NewValidationError("theme", "must be light or dark", nil),
					"Run 'build50 theme set light' or 'build50 theme set dark'.")
			}
			return runTheme(cmd, rootFlags, "command.theme.set", func(ctx context.Context, store *theme.Store) site.ThemePreference {
				return store.Set(ctx, pref)
			})
		},
	})

	return cmd
}

// runTheme opens the theme store, applies change when set, and prints the
// resulting preference.
func runTheme(cmd *cobra.Command, rootFlags *rootFlags, operation string, change func(context.Context, *theme.Store) site.ThemePreference) error {
	app, err := newAppContext(rootFlags, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, operation)

	// The theme command is pointless without persistence, so a storage
	// failure is an error here rather than a session-only fallback.
	if _, err := app.Store(); err != nil {
		logger.Error(ctx, "storage unavailable", "error", err)
		return err
	}

	store := app.ThemeStore(ctx)
	before := store.Current()
	current := before
	if change != nil {
		current = change(ctx, store)
	}

	if current != before {
		event := ports.NewEvent(ports.EventThemeChanged, "theme", current, "source", "cli")
		if err := app.Publisher.Publish(ctx, event); err != nil {
			logger.Warn(ctx, "theme event not published", "error", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", current)
	if app.Settings.Storage.Driver == config.DriverMemory {
		fmt.Fprintln(cmd.OutOrStdout(), "Note: the memory storage driver does not keep the theme between runs.")
	}
	return nil
}
