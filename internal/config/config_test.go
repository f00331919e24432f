package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/codesnap/internal/files/filesystem"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `root: ./src
output: out/snap.json
extensions:
  - .go
  - md
decode: replace
on_walk_error: abort
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "./src", cfg.Root)
	assert.Equal(t, "out/snap.json", cfg.Output)
	assert.Equal(t, []string{".go", "md"}, cfg.Extensions)
	assert.Equal(t, "replace", cfg.Decode)
	assert.Equal(t, "abort", cfg.OnWalkError)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `output: snapshot.json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Root)
	assert.Nil(t, cfg.Extensions)
	assert.Equal(t, "snapshot.json", cfg.Output)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: [.py]\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".py"}, cfg.Extensions)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Nil(t, cfg)
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	content := `root = "web"
extensions = [".vue", ".ts"]
decode = "strict"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "web", cfg.Root)
	assert.Equal(t, []string{".vue", ".ts"}, cfg.Extensions)
	assert.Equal(t, "strict", cfg.Decode)
}

func TestLoad_YAMLPreferredOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: from-yaml.json\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLConfigFileName), []byte("output = \"from-toml.json\"\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml.json", cfg.Output)
}

func TestLoadFile_TOMLUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codesnap.toml")
	require.NoError(t, os.WriteFile(path, []byte("outptu = \"typo.json\"\n"), 0644))

	cfg, err := LoadFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFS_MemoryFilesystem(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile(ConfigFileName, "root: app\nextensions: [.css]\n")

	cfg, err := LoadFS(mfs, "/work")
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Root)
	assert.Equal(t, []string{".css"}, cfg.Extensions)

	_, err = LoadFS(filesystem.NewMemoryFileSystem("/empty"), "/empty")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
