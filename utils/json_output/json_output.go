package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/thirukguru/version-gate/model"
)

// OutputCheckJSON writes the run report as JSON.
func OutputCheckJSON(w io.Writer, input model.RenderCheckInput) error {
	return printJSON(w, BuildCheckReport(input, time.Now().UTC().Format(time.RFC3339)))
}

// BuildCheckReport builds the check JSON report model.
func BuildCheckReport(input model.RenderCheckInput, generatedAt string) model.CheckReportJSON {
	results := input.Results
	if results == nil {
		results = []model.CheckResult{}
	}
	return model.CheckReportJSON{
		GeneratedAt: generatedAt,
		MinMajor:    input.MinMajor,
		Passed:      input.Passed,
		Error:       input.Error,
		Results:     results,
	}
}

// OutputHistoryJSON writes stored records as a JSON array.
func OutputHistoryJSON(w io.Writer, records []model.CheckRecord) error {
	if records == nil {
		records = []model.CheckRecord{}
	}
	return printJSON(w, records)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
