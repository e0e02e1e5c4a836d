package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codr1/careerbuilder/internal/config"
	"github.com/codr1/careerbuilder/internal/db"
	"github.com/codr1/careerbuilder/internal/statesync"
	"github.com/codr1/careerbuilder/internal/storage"
)

type rootFlags struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "builderctl",
		Short:         "Inspect and manage career page snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", config.Path(), "Path to the app configuration")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "Path to the SQLite database (overrides the configuration)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newRevisionsCmd(flags))
	cmd.AddCommand(newRestoreCmd(flags))

	return cmd
}

// openService opens the configured database and returns a sync service over
// its local store. The caller closes the returned DB.
func openService(flags *rootFlags) (*statesync.Service, *db.DB, error) {
	path := flags.dbPath
	strict := false
	if path == "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return nil, nil, newCommandError("loading configuration", err, "Pass --db or point --config at a valid app.yaml.")
		}
		path = cfg.Database.Filename
		strict = cfg.Builder.StrictPublish
	}

	database, err := db.New(path)
	if err != nil {
		return nil, nil, newCommandError(fmt.Sprintf("opening database %s", path), err, "Check the path and file permissions.")
	}

	svc := statesync.NewService(storage.NewLocalStore(database), statesync.Options{
		Revisions:     statesync.NewRevisions(database),
		StrictPublish: strict,
	})
	return svc, database, nil
}

// readInput reads a file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

type commandError struct {
	context    string
	cause      error
	suggestion string
}

func newCommandError(context string, cause error, suggestion string) error {
	return &commandError{context: context, cause: cause, suggestion: suggestion}
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed %s: %v", e.context, e.cause)
	}
	return fmt.Sprintf("Failed %s: %v\n\nSuggestion: %s", e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
