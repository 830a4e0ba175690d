package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content Config) string {
	t.Helper()
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	err = os.WriteFile(tempFilePath, data, 0644)
	require.NoError(t, err)
	return tempFilePath
}

func mockConfigPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t,
		filepath.Join(tempDir, "no-user-config.yaml"),
		filepath.Join(tempDir, "no-project-config.yaml"),
	)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.Equal(t, "auto", loadedConfig.ColorMode)
	assert.True(t, loadedConfig.ShowLineNumbers())
	assert.Equal(t, "github-dark", loadedConfig.ResolvedTheme())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	noLineNumbers := false
	userPath := createTempConfigFile(t, tempDir, "user.yaml", Config{
		Theme:       "monokai",
		LineNumbers: &noLineNumbers,
	})
	mockConfigPaths(t, userPath, filepath.Join(tempDir, "no-project.yaml"))

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "monokai", loadedConfig.Theme)
	assert.False(t, loadedConfig.ShowLineNumbers())
	// Untouched fields keep defaults.
	assert.Equal(t, defaultScrollOffset, loadedConfig.ScrollOffset)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	userPath := createTempConfigFile(t, tempDir, "user.yaml", Config{
		Theme:  "monokai",
		Editor: "nano",
	})
	projectPath := createTempConfigFile(t, tempDir, "project.yaml", Config{
		Theme:        "dracula",
		ScrollOffset: 0.5,
	})
	mockConfigPaths(t, userPath, projectPath)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dracula", loadedConfig.Theme)
	assert.Equal(t, 0.5, loadedConfig.ScrollOffset)
	// User setting survives where the project file is silent.
	assert.Equal(t, "nano", loadedConfig.Editor)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	badPath := filepath.Join(tempDir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("theme: [unclosed"), 0644))
	mockConfigPaths(t, badPath, filepath.Join(tempDir, "no-project.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestMergeConfigs_IgnoresOutOfRangeFractions(t *testing.T) {
	merged := mergeConfigs(GetDefaultConfig(), Config{ScrollOffset: 1.5, ListWidth: -0.2})
	assert.Equal(t, defaultScrollOffset, merged.ScrollOffset)
	assert.Equal(t, defaultListWidth, merged.ListWidth)
}

func TestResolvedTheme(t *testing.T) {
	assert.Equal(t, "github", Config{ColorMode: "light"}.ResolvedTheme())
	assert.Equal(t, "github-dark", Config{ColorMode: "dark"}.ResolvedTheme())
	assert.Equal(t, "vim", Config{ColorMode: "light", Theme: "vim"}.ResolvedTheme())
}
