package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 3"), 0o644))

	got, err := findConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindConfigFile_ExplicitPathNotFound(t *testing.T) {
	_, err := findConfigFile("/nonexistent/path/relclosure.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestFindConfigFile_AutoDiscovery(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	configPath := filepath.Join(root, "relclosure.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("size: 3"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	got, err := findConfigFile("")
	require.NoError(t, err)

	want, _ := filepath.EvalSymlinks(configPath)
	actual, _ := filepath.EvalSymlinks(got)
	assert.Equal(t, want, actual)
}

func TestFindConfigFile_StopsAtRepoRoot(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, "relclosure.yaml"), []byte("size: 3"), 0o644))

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	chdir(t, repo)

	got, err := findConfigFile("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadConfig_Defaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	chdir(t, root)

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.True(t, cfg.Analysis.StrictRecheck)
	assert.Empty(t, cfg.Input.File)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relclosure.yaml")
	content := `size: 4
input:
  file: rel.yaml
output:
  format: json
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("RELCLOSURE_OUTPUT_FORMAT", "yaml")

	cfg, got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 4, cfg.Size)
	assert.Equal(t, "rel.yaml", cfg.Input.File)
	assert.Equal(t, "yaml", cfg.Output.Format, "env overrides the file")
	assert.False(t, cfg.Output.Color)
}

func TestLoadConfig_InvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relclosure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 0\n"), 0o644))

	_, _, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size must be > 0")
}

func TestConfig_Resolved(t *testing.T) {
	cfg := &Config{Size: 5, Input: InputConfig{File: "a.yaml"}, Output: OutputConfig{Format: "text"}}

	assert.Equal(t, 5, cfg.ResolvedSize(0))
	assert.Equal(t, 3, cfg.ResolvedSize(3))
	assert.Equal(t, "a.yaml", cfg.ResolvedFile(""))
	assert.Equal(t, "b.txt", cfg.ResolvedFile("b.txt"))
	assert.Equal(t, "text", cfg.ResolvedFormat(""))
	assert.Equal(t, "json", cfg.ResolvedFormat("json"))
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitGeneral, ExitCode(base))
	assert.Equal(t, ExitConfig, ExitCode(ConfigError("loading configuration", base)))
	assert.Equal(t, ExitInput, ExitCode(InputError("reading relation", base)))

	err := InputError("reading relation", base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "reading relation: boom", err.Error())
	assert.Equal(t, "bare", (&ExitError{Code: ExitGeneral, Message: "bare"}).Error())
}
