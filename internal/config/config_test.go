package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/metalagman/taskstack/internal/tracker"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`store:
  driver: sqlite
urgent:
  duplicates: reject
render:
  table: markdown
`), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, tracker.DuplicatesReject, cfg.Urgent.Duplicates)
	assert.Equal(t, TableMarkdown, cfg.Render.Table)
	assert.Equal(t, "notty", cfg.Render.Style)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: memory\n"), 0o644))
	t.Setenv("TASKSTACK_STORE_DRIVER", "sqlite")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: postgres\nurgent:\n  duplicates: dedupe\n"), 0o644))

	_, err := Load(viper.New(), path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.Problems, 2)
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path, false))
	require.Error(t, WriteDefault(path, false), "existing file is kept without force")
	require.NoError(t, WriteDefault(path, true))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateSettings(map[string]any{
		"render": map[string]any{"table": "box", "style": "dark"},
	}))
	err := ValidateSettings(map[string]any{
		"log": map[string]any{"level": "loud"},
	})
	assert.ErrorContains(t, err, "log.level")
}
