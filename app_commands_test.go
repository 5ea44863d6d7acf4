package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/version-gate/model"
	"github.com/thirukguru/version-gate/service/storage"
)

func seedHistory(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := storage.NewService(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	inputs := []storage.SaveCheckInput{
		{Result: model.CheckResult{Label: "compiled", RawVersion: "3.2.8", Major: 3, MajorParsed: true, MinMajor: 3, Passed: true}},
		{Result: model.CheckResult{Label: "linked", RawVersion: "2.0.0", Major: 2, MajorParsed: true, MinMajor: 3, FailureKind: "VersionTooLow"}},
		{Result: model.CheckResult{Label: "ancient", MinMajor: 3, FailureKind: "MalformedVersionField"}, CheckedAt: time.Now().Add(-90 * 24 * time.Hour)},
	}
	for _, in := range inputs {
		_, err := store.SaveCheck(ctx, in)
		require.NoError(t, err)
	}
	return dbPath
}

func TestHistoryList(t *testing.T) {
	dbPath := seedHistory(t)

	var out bytes.Buffer
	require.NoError(t, runHistoryCommand([]string{"list", "--db-path", dbPath}, &out))
	assert.Contains(t, out.String(), "compiled")
	assert.Contains(t, out.String(), "linked")

	out.Reset()
	require.NoError(t, runHistoryCommand([]string{"list", "--db-path", dbPath, "--failed-only", "-o", "json"}, &out))
	assert.NotContains(t, out.String(), "compiled")
	assert.Contains(t, out.String(), `"failure_kind": "VersionTooLow"`)
}

func TestHistoryPurgeAndVacuum(t *testing.T) {
	dbPath := seedHistory(t)

	var out bytes.Buffer
	require.NoError(t, runHistoryCommand([]string{"purge", "--db-path", dbPath, "--older-than", "30"}, &out))
	assert.Equal(t, "Purged 1 checks\n", out.String())

	out.Reset()
	require.NoError(t, runHistoryCommand([]string{"vacuum", "--db-path", dbPath}, &out))
	assert.Contains(t, out.String(), "Vacuumed")
}

func TestHistoryUsageErrors(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	err := runHistoryCommand([]string{"--db-path", dbPath}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "usage: version-gate history")
	assert.Equal(t, 2, exitCode(err))

	err = runHistoryCommand([]string{"rewind", "--db-path", dbPath}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unsupported history command: rewind")
	assert.Equal(t, 2, exitCode(err))

	var out bytes.Buffer
	err = runHistoryCommand([]string{"list", "--db-path", dbPath, "-o", "xml"}, &out)
	assert.ErrorContains(t, err, `unsupported output "xml"`)
	assert.Equal(t, 2, exitCode(err))
	assert.Empty(t, out.String())

	err = runHistoryCommand([]string{"--bogus"}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(err))
}
