// Package versioncheck parses "<label>:<major>.<rest>" version lines and
// enforces a minimum major version.
package versioncheck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
	"github.com/thirukguru/version-gate/model"
	"github.com/thirukguru/version-gate/utils/logger"
)

// NewService creates a checker that accepts major versions >= minMajor.
func NewService(minMajor int, log *logrus.Entry) Service {
	if log == nil {
		log = logger.Component("versioncheck")
	}
	return &service{minMajor: minMajor, log: log}
}

func (s *service) MinMajor() int {
	return s.minMajor
}

// Check reads one line from r. Only immediate end of stream is EmptyInput; a
// blank line is read and then fails as MalformedVersionField.
func (s *service) Check(r io.Reader) (model.CheckResult, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return model.CheckResult{MinMajor: s.minMajor}, fmt.Errorf("failed to read version line: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return s.fail(model.CheckResult{MinMajor: s.minMajor}, &CheckError{Kind: ErrEmptyInput})
	}
	return s.CheckLine(line)
}

// CheckLine validates a single line. The returned result is filled in as far
// as parsing got, also when an error is returned.
func (s *service) CheckLine(line string) (model.CheckResult, error) {
	trimmed := strings.TrimSpace(line)
	result := model.CheckResult{Line: trimmed, MinMajor: s.minMajor}
	s.log.WithField("line", logger.SanitizeForLog(trimmed)).Debug("checking version line")

	fields := strings.Split(trimmed, ":")
	result.Label = strings.TrimSpace(fields[0])
	if len(fields) < 2 {
		return s.fail(result, &CheckError{Kind: ErrMalformedVersionField, Line: trimmed})
	}
	version := fields[1]
	result.RawVersion = strings.TrimSpace(version)

	if v, err := semver.NewVersion(result.RawVersion); err == nil {
		result.Semver = v.String()
	}

	majorText := strings.Split(version, ".")[0]
	major, err := parseMajor(majorText)
	if err != nil {
		return s.fail(result, &CheckError{Kind: ErrMalformedMajorVersion, Line: trimmed, Field: majorText, Err: err})
	}
	result.Major = major
	result.MajorParsed = true

	if major < s.minMajor {
		return s.fail(result, &CheckError{Kind: ErrVersionTooLow, Line: trimmed, Major: major, MinMajor: s.minMajor})
	}

	result.Passed = true
	s.log.WithFields(logrus.Fields{"major": major, "min_major": s.minMajor}).Debug("version accepted")
	return result, nil
}

func (s *service) CheckAll(r io.Reader) ([]model.CheckResult, error) {
	var results []model.CheckResult

	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return results, fmt.Errorf("failed to read version lines: %w", readErr)
		}
		if strings.TrimSpace(line) != "" {
			result, err := s.CheckLine(line)
			results = append(results, result)
			if err != nil {
				return results, err
			}
		}
		if readErr != nil {
			break
		}
	}

	if len(results) == 0 {
		result, err := s.fail(model.CheckResult{MinMajor: s.minMajor}, &CheckError{Kind: ErrEmptyInput})
		return []model.CheckResult{result}, err
	}
	return results, nil
}

func (s *service) fail(result model.CheckResult, err *CheckError) (model.CheckResult, error) {
	result.Passed = false
	result.FailureKind = KindName(err)
	s.log.WithField("kind", result.FailureKind).Debug(err.Error())
	return result, err
}
