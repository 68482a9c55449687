package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/build50/build50/internal/app/router"
	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/tui/shell"
	siteerrors "github.com/build50/build50/pkg/errors"
)

type browseOptions struct {
	page string
}

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse [page]",
		Short: "Open the site in the terminal",
		Long: `Open the Build50 site in an interactive terminal session.

When stdout is not a terminal the selected page is printed as plain text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.page = args[0]
			}
			return runBrowse(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.page, "page", "", "Page to open ("+pageList()+")")

	return cmd
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags, opts browseOptions) error {
	page := site.PageHome
	if opts.page != "" {
		parsed, err := site.ParsePage(opts.page)
		if err != nil {
			return newCommandError("open page", fmt.Sprintf("page %q", opts.page), err, pageSuggestion(err))
		}
		page = parsed
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	app, err := newAppContext(rootFlags, cmd.ErrOrStderr(), interactive)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "command.browse")
	logger.Info(ctx, "opening site", "page", page, "interactive", interactive)

	nav, err := router.New(page, logger)
	if err != nil {
		return newCommandError("open page", page.String(), err, pageSuggestion(err))
	}

	cat, err := app.Catalog(ctx)
	if err != nil {
		logger.Error(ctx, "catalog load failed", "error", err)
		return err
	}

	shellOpts := shell.Options{
		Context:   ctx,
		Router:    nav,
		Theme:     app.ThemeStore(ctx),
		Catalog:   cat,
		Submitter: app.Submitter(ctx),
		Publisher: app.Publisher,
		Logger:    logger,
		Stagger:   app.Settings.UI.Stagger,
		FadeSteps: app.Settings.UI.FadeSteps,
	}

	if !interactive {
		shellOpts.Stagger = 0
		shellOpts.FadeSteps = 0
		m := shell.NewModel(shellOpts)
		defer m.Close()
		_, err := fmt.Fprintln(out, m.Snapshot())
		return err
	}

	m := shell.NewModel(shellOpts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(shell.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	if err != nil {
		logger.Error(ctx, "site browser exited with error", "error", err)
		return fmt.Errorf("failed to run site browser: %w", err)
	}

	logger.Info(ctx, "site browser closed")
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func pageList() string {
	pages := site.AllPages()
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

func pageSuggestion(err error) string {
	var invalid *siteerrors.InvalidPageError
	if errors.As(err, &invalid) && invalid.Suggestion != "" {
		return fmt.Sprintf("Did you mean %q? Valid pages: %s.", invalid.Suggestion, pageList())
	}
	return "Valid pages: " + pageList() + "."
}
