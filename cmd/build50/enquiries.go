package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/build50/build50/internal/ports"
)

type enquiriesOptions struct {
	jsonOutput bool
}

func newEnquiriesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &enquiriesOptions{}

	cmd := &cobra.Command{
		Use:   "enquiries",
		Short: "List enquiries recorded by the outbox",
		Long: `List the contact-form enquiries that were delivered and recorded in storage.

Enquiries are only recorded while submission.outbox is enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnquiries(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type enquiriesJSONPayload struct {
	Count     int             `json:"count"`
	Enquiries []ports.Enquiry `json:"enquiries"`
}

func runEnquiries(cmd *cobra.Command, rootFlags *rootFlags, opts *enquiriesOptions) error {
	app, err := newAppContext(rootFlags, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "command.enquiries")

	store, err := app.Store()
	if err != nil {
		logger.Error(ctx, "storage unavailable", "error", err)
		return err
	}

	enquiries, err := store.List(ctx)
	if err != nil {
		return newCommandError("list enquiries", describeStorage(app.Settings.Storage), err,
			"Check that the storage file is readable and not corrupted.")
	}
	logger.Debug(ctx, "enquiries listed", "count", len(enquiries))

	if opts.jsonOutput {
		if enquiries == nil {
			enquiries = []ports.Enquiry{}
		}
		return writeJSON(cmd, enquiriesJSONPayload{Count: len(enquiries), Enquiries: enquiries})
	}

	out := cmd.OutOrStdout()
	if len(enquiries) == 0 {
		fmt.Fprintln(out, "No enquiries recorded yet.")
		if !app.Settings.Submission.Outbox {
			fmt.Fprintln(out, "\nThe outbox is disabled; set submission.outbox to true to record enquiries.")
		}
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSUBMITTED\tNAME\tEMAIL\tPACKAGE")
	for _, e := range enquiries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID),
			formatSubmitted(e.SubmittedAt),
			e.Name,
			e.Email,
			e.Package,
		)
	}
	return writer.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatSubmitted(ts time.Time) string {
	if ts.IsZero() {
		return "unknown"
	}
	return ts.Local().Format("2006-01-02 15:04")
}
