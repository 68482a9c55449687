package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/build50/build50/internal/domain/catalog"
	siteerrors "github.com/build50/build50/pkg/errors"
)

type catalogOptions struct {
	jsonOutput bool
}

func newAddOnsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "addons [category]",
		Short: "List add-on categories or the add-ons in one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return runAddOns(cmd, rootFlags, opts, category)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newPackagesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the monthly packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackages(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func loadCatalog(cmd *cobra.Command, rootFlags *rootFlags, operation string) (*catalog.Catalog, func() error, error) {
	app, err := newAppContext(rootFlags, cmd.ErrOrStderr(), false)
	if err != nil {
		return nil, nil, err
	}

	ctx, logger := app.CommandContext(cmd, operation)
	cat, err := app.Catalog(ctx)
	if err != nil {
		logger.Error(ctx, "catalog load failed", "error", err)
		_ = app.Close()
		return nil, nil, err
	}
	return cat, app.Close, nil
}

type categoryJSON struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

type addOnsJSONPayload struct {
	Category string                `json:"category"`
	Label    string                `json:"label"`
	Count    int                   `json:"count"`
	AddOns   []catalog.AddOnRecord `json:"addons"`
}

func runAddOns(cmd *cobra.Command, rootFlags *rootFlags, opts *catalogOptions, raw string) error {
	var category catalog.AddOnCategory
	if raw != "" {
		category = catalog.AddOnCategory(strings.ToLower(strings.TrimSpace(raw)))
		if !category.Valid() {
			return newCommandError("list add-ons", fmt.Sprintf("category %q", raw),
				siteerrors.NewValidationError("category", "unknown add-on category", nil),
				"Valid categories: "+categoryList()+".")
		}
	}

	cat, closeApp, err := loadCatalog(cmd, rootFlags, "command.addons")
	if err != nil {
		return err
	}
	defer closeApp()

	if category == "" {
		return renderCategories(cmd, cat, opts.jsonOutput)
	}

	records := cat.AddOns(category)
	if opts.jsonOutput {
		return writeJSON(cmd, addOnsJSONPayload{
			Category: string(category),
			Label:    category.Label(),
			Count:    len(records),
			AddOns:   records,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", category.Label())
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPRICE\tDESCRIPTION")
	for _, r := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", r.Name, r.Price, r.Description)
	}
	return writer.Flush()
}

func renderCategories(cmd *cobra.Command, cat *catalog.Catalog, jsonOutput bool) error {
	categories := catalog.Categories()
	if jsonOutput {
		payload := make([]categoryJSON, len(categories))
		for i, c := range categories {
			payload[i] = categoryJSON{Category: string(c), Label: c.Label(), Count: len(cat.AddOns(c))}
		}
		return writeJSON(cmd, payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CATEGORY\tLABEL\tADD-ONS")
	for _, c := range categories {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", c, c.Label(), len(cat.AddOns(c)))
	}
	return writer.Flush()
}

func runPackages(cmd *cobra.Command, rootFlags *rootFlags, opts *catalogOptions) error {
	cat, closeApp, err := loadCatalog(cmd, rootFlags, "command.packages")
	if err != nil {
		return err
	}
	defer closeApp()

	packages := cat.Packages()
	if opts.jsonOutput {
		return writeJSON(cmd, packages)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PACKAGE\tPRICE\tFEATURES\tDESCRIPTION")
	for _, p := range packages {
		name := p.Name
		if p.Highlight {
			name += " (most popular)"
		}
		fmt.Fprintf(writer, "%s\t%s%s\t%d\t%s\n", name, p.Price, p.Period, len(p.Features), p.Description)
	}
	return writer.Flush()
}

func categoryList() string {
	categories := catalog.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func writeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
