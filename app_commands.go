package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/thirukguru/version-gate/service/output"
	"github.com/thirukguru/version-gate/service/storage"
)

const historyUsage = "usage: version-gate history <list|purge|vacuum> [--db-path ...]"

func runHistoryCommand(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	limit := fs.Int("limit", 20, "Number of rows to list")
	failedOnly := fs.Bool("failed-only", false, "List only failed checks")
	olderThan := fs.Int("older-than", 30, "Purge checks older than N days")
	format := fs.StringP("output", "o", "table", "Output format (table or json)")
	if err := fs.Parse(args); err != nil {
		return &usageError{err}
	}
	if *format != string(output.FormatTable) && *format != string(output.FormatJSON) {
		return &usageError{fmt.Errorf("unsupported output %q (want table or json)", *format)}
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return &usageError{errors.New(historyUsage)}
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	switch sub := rest[0]; sub {
	case "list":
		records, err := store.ListChecks(ctx, storage.ListQuery{Limit: *limit, FailedOnly: *failedOnly})
		if err != nil {
			return err
		}
		return output.NewService(*format, out).RenderHistory(records)
	case "purge":
		count, err := store.PurgeOlderThan(ctx, *olderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Purged %d checks\n", count)
		return nil
	case "vacuum":
		if err := store.Vacuum(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "Vacuumed %s\n", store.Path())
		return nil
	default:
		return &usageError{fmt.Errorf("unsupported history command: %s", sub)}
	}
}
