package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir": "/srv/ats", "top_matches": 5}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ats", cfg.DataDir)
	assert.Equal(t, 5, cfg.TopMatches)
	assert.Empty(t, cfg.UploadDir)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{bad`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_RejectsNegativeTopMatches(t *testing.T) {
	cfg := Config{TopMatches: -1}
	assert.Error(t, cfg.Validate())
	cfg.TopMatches = 0
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{TopMatches: 10}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "data", merged.DataDir)
	assert.Equal(t, filepath.Join("uploads", "resumes"), merged.UploadDir)
	assert.Equal(t, 10, merged.TopMatches)
}

func TestMergeWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{DataDir: "/custom", UploadDir: "/up"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "/custom", merged.DataDir)
	assert.Equal(t, "/up", merged.UploadDir)
	assert.Equal(t, 0, merged.TopMatches)
}
