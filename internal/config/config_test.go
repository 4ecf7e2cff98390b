package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"resume": "resume.txt",
		"output_dir": "out",
		"port": 9090,
		"verbose": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestValidate_JobAndJobURLExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	merged := cfg.MergeWithDefaults(Config{Resume: "default.txt", OutputDir: "out", Port: 8080})

	assert.Equal(t, "mine.txt", merged.Resume)
	assert.Equal(t, "out", merged.OutputDir)
	assert.Equal(t, 8080, merged.Port)
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	v, err := EnvInt("TEST_ENV_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = EnvInt("TEST_ENV_INT_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	t.Setenv("TEST_ENV_INT_BAD", "abc")
	_, err = EnvInt("TEST_ENV_INT_BAD", 7)
	assert.Error(t, err)
}
