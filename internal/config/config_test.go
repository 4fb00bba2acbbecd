package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pose-annotator/internal/logger"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Overlay, cfg.Overlay)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"
json = true

[overlay]
point_radius = 8
point_color = "#00ff00"
line_width = 2
line_color = "#00f"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)

	style := cfg.OverlayStyle()
	assert.Equal(t, 8, style.PointRadius)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, style.PointColor)
	assert.Equal(t, 2, style.LineWidth)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, style.LineColor)

	assert.Equal(t, logger.DebugLevel, cfg.LoggerOptions().Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POSE_LOG_LEVEL", "error")
	t.Setenv("POSE_JSON_LOGS", "true")
	t.Setenv("POSE_LOG_FILE", "/tmp/pose.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "/tmp/pose.log", cfg.Log.File)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[overlay]\npoint_radius = 0\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[overlay]\nline_color = \"red\"\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSave_PersistsLastDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)

	images := t.TempDir()
	cfg.RememberFile(filepath.Join(images, "frame001.png"))
	require.NoError(t, cfg.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, images, reloaded.Dialogs.LastDirectory)
	assert.Equal(t, images, reloaded.StartDirectory())
}

func TestStartDirectory_FallsBackWhenMissing(t *testing.T) {
	cfg := Default()
	cfg.Dialogs.LastDirectory = filepath.Join(t.TempDir(), "gone")
	dir := cfg.StartDirectory()
	assert.NotEqual(t, cfg.Dialogs.LastDirectory, dir)
	assert.NotEmpty(t, dir)
}

func TestSave_SkipsEnvOverrides(t *testing.T) {
	t.Setenv("POSE_LOG_LEVEL", "debug")
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	cfg.Log.JSON = true
	require.NoError(t, cfg.Save())

	t.Setenv("POSE_LOG_LEVEL", "")
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", reloaded.Log.Level)
	assert.False(t, reloaded.Log.JSON)
}
