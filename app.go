// Package main is the entry point for the version-gate application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/version-gate/model"
	"github.com/thirukguru/version-gate/service/config"
	"github.com/thirukguru/version-gate/service/flag"
	"github.com/thirukguru/version-gate/service/output"
	"github.com/thirukguru/version-gate/service/storage"
	"github.com/thirukguru/version-gate/service/versioncheck"
	"github.com/thirukguru/version-gate/utils/banner"
	"github.com/thirukguru/version-gate/utils/logger"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// usageError marks failures caused by bad invocation or configuration.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func run() error {
	if len(os.Args) > 1 && os.Args[1] == "history" {
		return runHistoryCommand(os.Args[2:], os.Stdout)
	}

	flags, err := flag.NewService().GetParsedFlags()
	if err != nil {
		return &usageError{fmt.Errorf("failed to parse flags: %w", err)}
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	if flags.Version {
		printVersion(os.Stdout, versionInfo)
		return nil
	}

	settings, err := config.NewService(os.Getenv).Resolve(flags)
	if err != nil {
		return &usageError{err}
	}
	logger.Configure(os.Stderr, settings.Debug)

	outputService := output.NewService(settings.Output, os.Stdout)
	if outputService.Format() == output.FormatTable {
		banner.DrawBannerTitle()
	}

	var storageService storage.Service
	if settings.Store {
		storageService, err = storage.NewService(settings.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	return runCheckWorkflow(checkWorkflow{
		in:          os.Stdin,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		allLines:    settings.AllLines,
		checker:     versioncheck.NewService(settings.MinMajor, logger.Component("versioncheck")),
		output:      outputService,
		storage:     storageService,
		versionInfo: versionInfo,
	})
}

func printVersion(w io.Writer, info model.VersionInfo) {
	fmt.Fprintf(w, "version-gate version %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built at: %s\n", info.Date)
}
