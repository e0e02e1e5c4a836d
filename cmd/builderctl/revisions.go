package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codr1/careerbuilder/internal/statesync"
)

type revisionsOptions struct {
	kind  string
	limit int
}

func newRevisionsCmd(flags *rootFlags) *cobra.Command {
	opts := &revisionsOptions{}

	cmd := &cobra.Command{
		Use:   "revisions",
		Short: "List stored snapshot revisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, database, err := openService(flags)
			if err != nil {
				return err
			}
			defer database.Close()

			revs, err := svc.History(commandContext(cmd), opts.kind, opts.limit)
			if err != nil {
				return newCommandError("listing revisions", err, "")
			}
			if len(revs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No revisions.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tCREATED")
			for _, rev := range revs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", rev.ID, rev.Kind, rev.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", statesync.KindPublished, "Revision kind (published or autosave)")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "Maximum revisions to list")

	return cmd
}

func newRestoreCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <revision-id>",
		Short: "Republish a stored revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, database, err := openService(flags)
			if err != nil {
				return err
			}
			defer database.Close()

			if _, err := svc.Restore(commandContext(cmd), args[0]); err != nil {
				return newCommandError(fmt.Sprintf("restoring %s", args[0]), err, "Run 'builderctl revisions' to list revision ids.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", args[0])
			return nil
		},
	}
}
