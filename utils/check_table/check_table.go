// Package checktable renders check results and history as go-pretty tables.
package checktable

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/version-gate/model"
)

// DrawCheckTable renders the results of one run.
func DrawCheckTable(w io.Writer, input model.RenderCheckInput) {
	if input.Passed {
		fmt.Fprintf(w, "\n%s\n", text.FgGreen.Sprintf("✔ Version gate passed (major >= %d)", input.MinMajor))
	} else {
		fmt.Fprintf(w, "\n%s\n", text.FgRed.Sprintf("✘ Version gate failed (major >= %d)", input.MinMajor))
	}

	if len(input.Results) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Label", "Version", "Major", "Semver", "Status"})
	for _, r := range input.Results {
		major := "-"
		if r.MajorParsed {
			major = strconv.Itoa(r.Major)
		}
		t.AppendRow(table.Row{orDash(r.Label), orDash(r.RawVersion), major, orDash(r.Semver), status(r.Passed, r.FailureKind)})
	}
	t.Render()
}

// DrawHistoryTable renders stored check records.
func DrawHistoryTable(w io.Writer, records []model.CheckRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No checks recorded")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Checked At", "Label", "Version", "Major", "Min", "Status"})
	for _, r := range records {
		major := "-"
		if r.Major != nil {
			major = strconv.Itoa(*r.Major)
		}
		t.AppendRow(table.Row{
			r.ID,
			r.CheckedAt.Local().Format("2006-01-02 15:04:05"),
			orDash(r.Label),
			orDash(r.RawVersion),
			major,
			r.MinMajor,
			status(r.Passed, r.FailureKind),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

func status(passed bool, kind string) string {
	if passed {
		return text.FgGreen.Sprint("PASS")
	}
	if kind == "" {
		kind = "FAIL"
	}
	return text.FgRed.Sprint(kind)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
