package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("ORGANIZE_TEST_DIR", "/tmp/organize")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "plain", path: "/etc/export.json", want: "/etc/export.json"},
		{name: "tilde", path: "~/export.json", want: filepath.Join(home, "export.json")},
		{name: "bare tilde", path: "~", want: home},
		{name: "env var", path: "$ORGANIZE_TEST_DIR/out.csv", want: "/tmp/organize/out.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestGetEnvPrefersProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TEST_API_KEY=from-file\n"), 0o600))
	chdir(t, dir)

	t.Setenv("TEST_API_KEY", "from-env")
	assert.Equal(t, "from-env", GetEnv("TEST_API_KEY"))
}

func TestGetEnvFallsBackToDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TEST_FILE_ONLY_KEY=secret\n"), 0o600))
	chdir(t, dir)

	assert.Equal(t, "secret", GetEnv("TEST_FILE_ONLY_KEY"))
	assert.Equal(t, "", GetEnv("TEST_ABSENT_KEY"))
}

func TestRequireEnv(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here

	t.Setenv("TEST_REQUIRED_KEY", "value")
	v, err := RequireEnv("TEST_REQUIRED_KEY")
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = RequireEnv("TEST_NEVER_SET_KEY")
	require.ErrorIs(t, err, common.ErrMissingConfig)
}
