package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/build50/build50/internal/config"
	"github.com/build50/build50/internal/domain/catalog"
	"github.com/build50/build50/internal/infrastructure/storage"
	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// isolateHome points every default path at a fresh temp directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BUILD50_STORAGE_DRIVER", "")
	t.Setenv("BUILD50_SUBMISSION_OUTBOX", "")
	return home
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-11-26"

	output, err := executeCommand(newRootCmd(), "version")
	require.NoError(t, err)
	require.Contains(t, output, "Build50 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-11-26")
}

func TestThemeCommand(t *testing.T) {
	t.Run("defaults to dark", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "theme")
		require.NoError(t, err)
		assert.Contains(t, output, "Theme: dark")
	})

	t.Run("set persists between runs", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "theme", "set", "light")
		require.NoError(t, err)
		assert.Contains(t, output, "Theme: light")

		output, err = executeCommand(newRootCmd(), "theme", "show")
		require.NoError(t, err)
		assert.Contains(t, output, "Theme: light")
	})

	t.Run("toggle flips the saved value", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "theme", "toggle")
		require.NoError(t, err)
		assert.Contains(t, output, "Theme: light")

		output, err = executeCommand(newRootCmd(), "theme", "toggle")
		require.NoError(t, err)
		assert.Contains(t, output, "Theme: dark")
	})

	t.Run("rejects unknown themes", func(t *testing.T) {
		isolateHome(t)

		_, err := executeCommand(newRootCmd(), "theme", "set", "Dark")
		require.Error(t, err)

		var validation *siteerrors.ValidationError
		require.True(t, errors.As(err, &validation))
		assert.Equal(t, "theme", validation.Field)
		assert.Contains(t, err.Error(), "Suggestion:")
	})

	t.Run("memory driver warns that nothing is kept", func(t *testing.T) {
		isolateHome(t)
		t.Setenv("BUILD50_STORAGE_DRIVER", "memory")

		output, err := executeCommand(newRootCmd(), "theme", "set", "light")
		require.NoError(t, err)
		assert.Contains(t, output, "does not keep the theme")
	})
}

func TestAddOnsCommand(t *testing.T) {
	t.Run("lists categories", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "addons")
		require.NoError(t, err)
		for _, c := range catalog.Categories() {
			assert.Contains(t, output, c.Label())
		}
	})

	t.Run("lists one category as a table", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "addons", "web")
		require.NoError(t, err)
		assert.Contains(t, output, "Website & Design")
		assert.Contains(t, output, "Extra Page")
		assert.Contains(t, output, "NAME")
	})

	t.Run("encodes one category as JSON", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "addons", "SEO", "--json")
		require.NoError(t, err)

		var payload addOnsJSONPayload
		require.NoError(t, json.Unmarshal([]byte(output), &payload))
		assert.Equal(t, "seo", payload.Category)
		assert.Equal(t, len(payload.AddOns), payload.Count)
		assert.NotEmpty(t, payload.AddOns)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		isolateHome(t)

		_, err := executeCommand(newRootCmd(), "addons", "hosting")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Valid categories: web, seo")
	})
}

func TestPackagesCommand(t *testing.T) {
	isolateHome(t)

	output, err := executeCommand(newRootCmd(), "packages")
	require.NoError(t, err)
	assert.Contains(t, output, "Starter")
	assert.Contains(t, output, "$35/mo")
	assert.Contains(t, output, "(most popular)")

	output, err = executeCommand(newRootCmd(), "packages", "--json")
	require.NoError(t, err)

	var packages []catalog.Package
	require.NoError(t, json.Unmarshal([]byte(output), &packages))
	assert.Len(t, packages, len(catalog.Default().Packages()))
}

func TestEnquiriesCommand(t *testing.T) {
	t.Run("reports an empty outbox", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "enquiries")
		require.NoError(t, err)
		assert.Contains(t, output, "No enquiries recorded yet.")
	})

	t.Run("lists recorded enquiries", func(t *testing.T) {
		home := isolateHome(t)

		store, err := storage.Open(config.StorageSettings{
			Driver: config.DriverFile,
			Path:   filepath.Join(home, ".build50", "state.json"),
		})
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), ports.Enquiry{
			ID:          "4f1c2a9e-0000-4000-8000-000000000000",
			Name:        "Sarah Jenkins",
			Email:       "sarah@example.com",
			Package:     "Growth",
			Message:     "Need a new site",
			SubmittedAt: time.Date(2025, 11, 26, 9, 30, 0, 0, time.UTC),
		}))
		require.NoError(t, store.Close())

		output, err := executeCommand(newRootCmd(), "enquiries")
		require.NoError(t, err)
		assert.Contains(t, output, "4f1c2a9e")
		assert.NotContains(t, output, "4f1c2a9e-0000")
		assert.Contains(t, output, "Sarah Jenkins")
		assert.Contains(t, output, "Growth")

		output, err = executeCommand(newRootCmd(), "enquiries", "--json")
		require.NoError(t, err)

		var payload enquiriesJSONPayload
		require.NoError(t, json.Unmarshal([]byte(output), &payload))
		require.Equal(t, 1, payload.Count)
		assert.Equal(t, "sarah@example.com", payload.Enquiries[0].Email)
	})
}

func TestBrowseCommandWithoutTerminal(t *testing.T) {
	t.Run("root command prints the home page", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd())
		require.NoError(t, err)
		assert.Contains(t, output, "Trusted by Australian Businesses")
		assert.Contains(t, output, "All rights reserved.")
	})

	t.Run("prints the requested page", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "browse", "services")
		require.NoError(t, err)
		assert.Contains(t, output, "Starter")
		assert.Contains(t, output, "Extra Page")
	})

	t.Run("page flag is case insensitive", func(t *testing.T) {
		isolateHome(t)

		output, err := executeCommand(newRootCmd(), "browse", "--page", "PRIVACY")
		require.NoError(t, err)
		assert.Contains(t, output, "Introduction")
	})

	t.Run("suggests the closest page", func(t *testing.T) {
		isolateHome(t)

		_, err := executeCommand(newRootCmd(), "browse", "--page", "contcat")
		require.Error(t, err)

		var invalid *siteerrors.InvalidPageError
		require.True(t, errors.As(err, &invalid))
		assert.Contains(t, err.Error(), `Did you mean "contact"?`)
	})
}

func TestPathsCommand(t *testing.T) {
	home := isolateHome(t)

	output, err := executeCommand(newRootCmd(), "paths")
	require.NoError(t, err)
	assert.Contains(t, output, "not found, using defaults")
	assert.Contains(t, output, filepath.Join(home, ".build50", "state.json"))
	assert.Contains(t, output, "(built in)")
}

func TestMissingConfigFileFails(t *testing.T) {
	isolateHome(t)

	_, err := executeCommand(newRootCmd(), "--config", filepath.Join(t.TempDir(), "missing.yaml"), "packages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load configuration")
}

func TestCommandErrorFormatting(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newCommandError("open storage", "file backend", cause, "Try again.")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Failed to open storage: file backend\n\nError: boom\n\nSuggestion: Try again.", err.Error())

	bare := newCommandError("open storage", "file backend", cause, "")
	assert.NotContains(t, bare.Error(), "Suggestion")
}
