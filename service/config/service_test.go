package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/version-gate/model"
)

func envMap(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func defaultFlags() model.Flags {
	return model.Flags{MinMajor: 3, Output: "quiet", Changed: map[string]bool{}}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestResolveDefaults(t *testing.T) {
	settings, err := NewService(envMap(nil)).Resolve(defaultFlags())
	require.NoError(t, err)
	assert.Equal(t, model.Settings{MinMajor: 3, Output: "quiet"}, settings)
}

func TestResolveConfigFile(t *testing.T) {
	flags := defaultFlags()
	flags.ConfigPath = writeConfig(t, `
min_major: 4
all_lines: true
output: table
store: true
db_path: /tmp/gate.db
`)

	settings, err := NewService(envMap(nil)).Resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, 4, settings.MinMajor)
	assert.True(t, settings.AllLines)
	assert.Equal(t, "table", settings.Output)
	assert.True(t, settings.Store)
	assert.Equal(t, "/tmp/gate.db", settings.DBPath)
}

func TestResolvePrecedence(t *testing.T) {
	flags := defaultFlags()
	flags.ConfigPath = writeConfig(t, "min_major: 4\noutput: table\n")
	env := envMap(map[string]string{EnvMinMajor: "5", EnvOutput: "json"})

	settings, err := NewService(env).Resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.MinMajor, "environment beats config file")
	assert.Equal(t, "json", settings.Output)

	flags.MinMajor = 2
	flags.Output = "quiet"
	flags.Changed = map[string]bool{"min-major": true, "output": true}
	settings, err = NewService(env).Resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, 2, settings.MinMajor, "explicit flag beats environment")
	assert.Equal(t, "quiet", settings.Output)
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		flags   func(model.Flags) model.Flags
		wantErr string
	}{
		{
			name:    "bad env int",
			env:     map[string]string{EnvMinMajor: "three"},
			wantErr: `invalid VERSION_GATE_MIN_MAJOR="three"`,
		},
		{
			name:    "negative minimum",
			flags:   func(f model.Flags) model.Flags { f.MinMajor = -1; return f },
			wantErr: "min major must be >= 0",
		},
		{
			name:    "unknown output",
			flags:   func(f model.Flags) model.Flags { f.Output = "html"; return f },
			wantErr: `unsupported output "html"`,
		},
		{
			name:    "missing config file",
			flags:   func(f model.Flags) model.Flags { f.ConfigPath = "/nonexistent/gate.yaml"; return f },
			wantErr: "failed to read config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flags := defaultFlags()
			if tc.flags != nil {
				flags = tc.flags(flags)
			}
			_, err := NewService(envMap(tc.env)).Resolve(flags)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "min_major: [1, 2\n")
	_, err := NewService(envMap(nil)).LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestResolveNormalizesOutput(t *testing.T) {
	flags := defaultFlags()
	flags.Output = " JSON "
	settings, err := NewService(envMap(nil)).Resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, "json", settings.Output)
}
