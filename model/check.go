package model

import "time"

// CheckResult is the outcome of checking one version line.
type CheckResult struct {
	Line        string `json:"line"`
	Label       string `json:"label,omitempty"`
	RawVersion  string `json:"raw_version,omitempty"`
	Major       int    `json:"major"`
	MajorParsed bool   `json:"-"`
	MinMajor    int    `json:"min_major"`
	Semver      string `json:"semver,omitempty"`
	Passed      bool   `json:"passed"`
	FailureKind string `json:"failure_kind,omitempty"`
}

// RenderCheckInput carries everything needed to render a check run.
type RenderCheckInput struct {
	Results  []CheckResult
	MinMajor int
	Passed   bool
	Error    string
}

// CheckReportJSON is the JSON document printed by --output json.
type CheckReportJSON struct {
	GeneratedAt string        `json:"generated_at"`
	MinMajor    int           `json:"min_major"`
	Passed      bool          `json:"passed"`
	Error       string        `json:"error,omitempty"`
	Results     []CheckResult `json:"results"`
}

// CheckRecord is a check result as stored in the history database.
type CheckRecord struct {
	ID          int64     `json:"id"`
	CheckedAt   time.Time `json:"checked_at"`
	Label       string    `json:"label,omitempty"`
	RawVersion  string    `json:"raw_version,omitempty"`
	Major       *int      `json:"major,omitempty"`
	MinMajor    int       `json:"min_major"`
	Semver      string    `json:"semver,omitempty"`
	Passed      bool      `json:"passed"`
	FailureKind string    `json:"failure_kind,omitempty"`
	ToolVersion string    `json:"tool_version,omitempty"`
}
