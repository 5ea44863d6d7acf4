package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/thirukguru/version-gate/model"
	"github.com/thirukguru/version-gate/service/output"
	"github.com/thirukguru/version-gate/service/storage"
	"github.com/thirukguru/version-gate/service/versioncheck"
	"github.com/thirukguru/version-gate/utils/logger"
)

type checkWorkflow struct {
	in          io.Reader
	interactive bool
	allLines    bool
	checker     versioncheck.Service
	output      output.Service
	storage     storage.Service
	versionInfo model.VersionInfo
}

// runCheckWorkflow reads the version report, records and renders the result,
// and returns the check failure, if any, unchanged.
func runCheckWorkflow(w checkWorkflow) error {
	if w.interactive {
		w.output.StartSpinner(os.Stderr)
	}

	var (
		results  []model.CheckResult
		checkErr error
	)
	if w.allLines {
		results, checkErr = w.checker.CheckAll(w.in)
	} else {
		var result model.CheckResult
		result, checkErr = w.checker.Check(w.in)
		results = []model.CheckResult{result}
	}
	w.output.StopSpinner()

	if w.storage != nil {
		if err := saveResults(w.storage, results, w.versionInfo.Version); err != nil {
			if checkErr == nil {
				return err
			}
			logger.Component("storage").WithError(err).Warn("failed to record failed check")
		}
	}

	input := model.RenderCheckInput{
		Results:  results,
		MinMajor: w.checker.MinMajor(),
		Passed:   checkErr == nil,
	}
	if checkErr != nil {
		input.Error = checkErr.Error()
	}
	if err := w.output.RenderCheck(input); err != nil {
		if checkErr == nil {
			return err
		}
		logger.Component("output").WithError(err).Warn("failed to render result")
	}

	return checkErr
}

func saveResults(store storage.Service, results []model.CheckResult, toolVersion string) error {
	ctx := context.Background()
	now := time.Now()
	for _, r := range results {
		if _, err := store.SaveCheck(ctx, storage.SaveCheckInput{
			Result:      r,
			ToolVersion: toolVersion,
			CheckedAt:   now,
		}); err != nil {
			return err
		}
	}
	return nil
}
