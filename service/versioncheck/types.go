package versioncheck

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/thirukguru/version-gate/model"
)

// DefaultMinMajor is the lowest major version accepted when none is configured.
const DefaultMinMajor = 3

type service struct {
	minMajor int
	log      *logrus.Entry
}

// Service is the interface for validating version report lines.
type Service interface {
	// Check reads exactly one line from r and validates it.
	Check(r io.Reader) (model.CheckResult, error)
	// CheckLine validates an already-read line.
	CheckLine(line string) (model.CheckResult, error)
	// CheckAll validates every non-blank line of r, stopping at the first failure.
	CheckAll(r io.Reader) ([]model.CheckResult, error)
	MinMajor() int
}
