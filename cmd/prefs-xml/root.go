package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CreativeUnicorns/prefsxml"
	"github.com/CreativeUnicorns/prefsxml/storage"
)

const usageLine = "usage: prefs-xml <xml-path> [--string key value] [--bool key true|false] ..."

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func newRootCmd(logger prefsxml.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs-xml <xml-path> [--string key value] [--bool key true|false] ...",
		Short: "Update SharedPreferences XML with key/value pairs",
		Long: `Update an Android SharedPreferences XML file in place.

Each --string or --bool group replaces the entry with that name, moving it to the end
of the file. A missing, malformed, or non-<map> file is replaced by a fresh document.

Examples:
  prefs-xml trmnl_prefs.xml --string api_id abc123 --string api_token s3cret
  prefs-xml trmnl_prefs.xml --bool gift_mode true`,
		// Groups take two values each, which pflag cannot express; args are parsed by prefsxml.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return prefsxml.ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.NewFileStorage(args[0])
			defer store.Close()

			editor := prefsxml.New(
				prefsxml.WithStorage(store),
				prefsxml.WithLogger(logger),
			)
			return editor.Edit(cmd.Context(), args[1:])
		},
	}
}

// execute runs the command against args and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	logger := prefsxml.NewLogger(stderr, prefsxml.LogLevelWarn)
	cmd := newRootCmd(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, prefsxml.ErrUsage):
		fmt.Fprintln(w, usageLine)
	case prefsxml.IsUsageError(err):
		fmt.Fprintln(w, err)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

func exitCode(err error) int {
	if prefsxml.IsUsageError(err) {
		return exitUsage
	}
	return exitError
}
