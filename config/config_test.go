package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/logger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Viewport.Width)
	assert.Equal(t, 24, cfg.Viewport.Height)
	assert.Equal(t, 10000, cfg.Table.Rows)
	assert.Equal(t, 1, cfg.Table.RowHeight)
	assert.Equal(t, 4, cfg.Table.Overscan)
	assert.True(t, cfg.Table.VirtualizeColumns)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, DefaultColumns(), cfg.Columns)

	layout := cfg.Layout()
	assert.Equal(t, 1, layout.Left.Len())
	assert.Equal(t, 12, layout.Scrollable.Len())
	assert.Equal(t, 1, layout.Right.Len())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
viewport:
  width: 100
table:
  rows: 500
  virtualize_columns: false
columns:
  - key: name
    width: 20
    fixed: left
  - key: price
    width: 8
    align: right
    recyclable: true
  - key: qty
    width: 5
logger:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Viewport.Width)
	assert.Equal(t, 24, cfg.Viewport.Height, "defaults fill the gaps")
	assert.Equal(t, 500, cfg.Table.Rows)
	assert.False(t, cfg.Table.VirtualizeColumns)

	layout := cfg.Layout()
	require.Equal(t, 1, layout.Left.Len())
	assert.Equal(t, "name", layout.Left.Columns[0].Key)
	assert.Equal(t, "name", layout.Left.Columns[0].Header)
	require.Equal(t, 2, layout.Scrollable.Len())
	assert.Equal(t, column.AlignRight, layout.Scrollable.Columns[0].Align)
	assert.True(t, layout.Scrollable.Columns[0].Recyclable)
	assert.Equal(t, 13, layout.Scrollable.Width())
	assert.Zero(t, layout.Right.Len())

	opts := cfg.LoggerOptions()
	assert.Equal(t, logger.DebugLevel, opts.Level)
	assert.Equal(t, logger.TypeJSON, opts.Type)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "table:\n  rows: 500\n")
	t.Setenv("GRIDVIEW_TABLE_ROWS", "42")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Table.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"row height", "table:\n  row_height: 0\n", "table.row_height"},
		{"overscan", "table:\n  overscan: -1\n", "table.overscan"},
		{"log level", "logger:\n  level: loud\n", "logger.level"},
		{"column width", "columns:\n  - key: a\n", "width of \"a\""},
		{"column key", "columns:\n  - width: 3\n", "key is required"},
		{"duplicate", "columns:\n  - {key: a, width: 1}\n  - {key: a, width: 2}\n", "duplicate key"},
		{"fixed", "columns:\n  - {key: a, width: 1, fixed: top}\n", "fixed of \"a\""},
		{"align", "columns:\n  - {key: a, width: 1, align: up}\n", "unknown alignment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
