package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/snapshot"
	"github.com/codr1/careerbuilder/internal/style"
)

var errLintFailed = errors.New("snapshot has lint errors")

type exportOptions struct {
	published bool
	output    string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the live or published snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.published, "published", false, "Export the published snapshot instead of the live one")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	svc, database, err := openService(flags)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := commandContext(cmd)
	load := svc.LoadLive
	if opts.published {
		load = svc.LoadPublished
	}
	state, err := load(ctx)
	if err != nil {
		return newCommandError("loading snapshot", err, "")
	}
	if state == nil {
		return newCommandError("exporting", errors.New("no snapshot stored"), "Save or publish from the builder first.")
	}

	data, err := encodeIndented(*state)
	if err != nil {
		return err
	}
	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return newCommandError(fmt.Sprintf("writing %s", opts.output), err, "")
	}
	return nil
}

type importOptions struct {
	publish bool
}

func newImportCmd(flags *rootFlags) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Store a snapshot as the live state, or publish it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.publish, "publish", false, "Publish the snapshot as well")

	return cmd
}

func runImport(cmd *cobra.Command, flags *rootFlags, name string, opts *importOptions) error {
	text, err := readInput(cmd, name)
	if err != nil {
		return newCommandError(fmt.Sprintf("reading %s", name), err, "")
	}
	state, err := snapshot.Decode(text)
	if err != nil {
		return newCommandError("decoding snapshot", err, "The file must hold a JSON object.")
	}

	svc, database, err := openService(flags)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := commandContext(cmd)
	if opts.publish {
		id, err := svc.Publish(ctx, state)
		if err != nil {
			return newCommandError("publishing", err, "Run 'builderctl lint' to see what failed.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published revision %s\n", id)
		return nil
	}
	if err := svc.Autosave(ctx, state); err != nil {
		return newCommandError("saving", err, "")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved live snapshot")
	return nil
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file|->",
		Short: "Print the normalized form of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return newCommandError(fmt.Sprintf("reading %s", args[0]), err, "")
			}
			state, err := snapshot.Decode(text)
			if err != nil {
				return newCommandError("decoding snapshot", err, "The file must hold a JSON object.")
			}
			data, err := encodeIndented(state)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file|->",
		Short: "Report fields that would fail a strict publish or fall back to defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return newCommandError(fmt.Sprintf("reading %s", args[0]), err, "")
			}
			state, err := snapshot.Decode(text)
			if err != nil {
				return newCommandError("decoding snapshot", err, "The file must hold a JSON object.")
			}
			problems := lint(state)
			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintln(out, "OK")
				return nil
			}
			for _, p := range problems {
				fmt.Fprintf(out, "- %s\n", p)
			}
			return errLintFailed
		},
	}
}

// lint lists validation failures followed by style values the renderers
// would silently replace.
func lint(state models.BuilderState) []string {
	var problems []string
	if err := snapshot.Validate(state); err != nil {
		problems = append(problems, unjoin(err)...)
	}
	for _, miss := range style.Misses(state) {
		problems = append(problems, miss.Error())
	}
	return problems
}

func unjoin(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func encodeIndented(state models.BuilderState) ([]byte, error) {
	data, err := snapshot.Encode(state)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("indent snapshot: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
