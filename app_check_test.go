package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/version-gate/model"
	"github.com/thirukguru/version-gate/service/output"
	"github.com/thirukguru/version-gate/service/storage"
	"github.com/thirukguru/version-gate/service/versioncheck"
)

type mockStorage struct {
	saved   []storage.SaveCheckInput
	saveErr error
}

func (m *mockStorage) SaveCheck(_ context.Context, input storage.SaveCheckInput) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.saved = append(m.saved, input)
	return int64(len(m.saved)), nil
}
func (m *mockStorage) ListChecks(context.Context, storage.ListQuery) ([]model.CheckRecord, error) {
	return nil, nil
}
func (m *mockStorage) PurgeOlderThan(context.Context, int) (int64, error) { return 0, nil }
func (m *mockStorage) Vacuum(context.Context) error                       { return nil }
func (m *mockStorage) Path() string                                       { return "mock" }
func (m *mockStorage) Close() error                                       { return nil }

func newWorkflow(input string, format string, out io.Writer) checkWorkflow {
	return checkWorkflow{
		in:          strings.NewReader(input),
		checker:     versioncheck.NewService(versioncheck.DefaultMinMajor, nil),
		output:      output.NewService(format, out),
		versionInfo: model.VersionInfo{Version: "1.2.3"},
	}
}

func TestRunCheckWorkflowQuietSuccess(t *testing.T) {
	var out bytes.Buffer
	err := runCheckWorkflow(newWorkflow("SDL version:3.2.8\n", "quiet", &out))
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunCheckWorkflowFailureKinds(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{input: "SDL:2.9.1", wantErr: versioncheck.ErrVersionTooLow},
		{input: "no-colon-here", wantErr: versioncheck.ErrMalformedVersionField},
		{input: "SDL:abc.2.8", wantErr: versioncheck.ErrMalformedMajorVersion},
		{input: "", wantErr: versioncheck.ErrEmptyInput},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			err := runCheckWorkflow(newWorkflow(tc.input, "quiet", io.Discard))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 1, exitCode(err))
		})
	}
}

func TestRunCheckWorkflowStoresResults(t *testing.T) {
	store := &mockStorage{}
	w := newWorkflow("compiled: 3.2.8\nlinked: 2.0.0\n", "quiet", io.Discard)
	w.allLines = true
	w.storage = store

	err := runCheckWorkflow(w)
	require.ErrorIs(t, err, versioncheck.ErrVersionTooLow)
	require.Len(t, store.saved, 2)
	assert.True(t, store.saved[0].Result.Passed)
	assert.Equal(t, "VersionTooLow", store.saved[1].Result.FailureKind)
	assert.Equal(t, "1.2.3", store.saved[1].ToolVersion)
}

func TestRunCheckWorkflowStorageErrors(t *testing.T) {
	saveErr := errors.New("disk full")

	w := newWorkflow("SDL:3.2.8", "quiet", io.Discard)
	w.storage = &mockStorage{saveErr: saveErr}
	assert.ErrorIs(t, runCheckWorkflow(w), saveErr)

	w = newWorkflow("SDL:1.0.0", "quiet", io.Discard)
	w.storage = &mockStorage{saveErr: saveErr}
	err := runCheckWorkflow(w)
	assert.ErrorIs(t, err, versioncheck.ErrVersionTooLow, "check failure wins over storage failure")
}

func TestRunCheckWorkflowJSON(t *testing.T) {
	var out bytes.Buffer
	err := runCheckWorkflow(newWorkflow("SDL:2.9.1", "json", &out))
	require.Error(t, err)
	assert.Contains(t, out.String(), `"passed": false`)
	assert.Contains(t, out.String(), `"failure_kind": "VersionTooLow"`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(&usageError{errors.New("bad flag")}))
	assert.Equal(t, 1, exitCode(versioncheck.ErrVersionTooLow))
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out, model.VersionInfo{Version: "1.0.0", Commit: "abc123", Date: "2026-10-18"})
	assert.Equal(t, "version-gate version 1.0.0\ncommit: abc123\nbuilt at: 2026-10-18\n", out.String())
}
