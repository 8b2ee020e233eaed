// Package config loads the settings of a gridview host from a YAML file,
// GRIDVIEW_ environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/logger"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRIDVIEW"

type Config struct {
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Table    TableConfig    `mapstructure:"table" yaml:"table"`
	Columns  []ColumnConfig `mapstructure:"columns" yaml:"columns"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
}

type ViewportConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

type TableConfig struct {
	Rows              int  `mapstructure:"rows" yaml:"rows"`
	RowHeight         int  `mapstructure:"row_height" yaml:"row_height"`
	HeaderHeight      int  `mapstructure:"header_height" yaml:"header_height"`
	FooterHeight      int  `mapstructure:"footer_height" yaml:"footer_height"`
	Overscan          int  `mapstructure:"overscan" yaml:"overscan"`
	VirtualizeColumns bool `mapstructure:"virtualize_columns" yaml:"virtualize_columns"`
	// SettleMs is the quiet period after the last scroll input before the
	// host runs a settled pass.
	SettleMs          int  `mapstructure:"settle_ms" yaml:"settle_ms"`
}

// ColumnConfig describes one column. Fixed is "left", "right" or empty for
// the scrollable zone.
type ColumnConfig struct {
	Key         string `mapstructure:"key" yaml:"key"`
	Header      string `mapstructure:"header" yaml:"header"`
	Width       int    `mapstructure:"width" yaml:"width"`
	MinWidth    int    `mapstructure:"min_width" yaml:"min_width"`
	MaxWidth    int    `mapstructure:"max_width" yaml:"max_width"`
	Align       string `mapstructure:"align" yaml:"align"`
	Fixed       string `mapstructure:"fixed" yaml:"fixed"`
	Recyclable  bool   `mapstructure:"recyclable" yaml:"recyclable"`
	Resizable   bool   `mapstructure:"resizable" yaml:"resizable"`
	Reorderable bool   `mapstructure:"reorderable" yaml:"reorderable"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	// File receives log records. Empty discards them, since the terminal is
	// owned by the table.
	File   string `mapstructure:"file" yaml:"file"`

	// Rotation of File, in megabytes, files and days.
	MaxSize    int  `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int  `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("viewport.width", 80)
	v.SetDefault("viewport.height", 24)

	v.SetDefault("table.rows", 10000)
	v.SetDefault("table.row_height", 1)
	v.SetDefault("table.header_height", 1)
	v.SetDefault("table.footer_height", 0)
	v.SetDefault("table.overscan", 4)
	v.SetDefault("table.virtualize_columns", true)
	v.SetDefault("table.settle_ms", 150)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// DefaultColumns is the column set used when the configuration has none.
func DefaultColumns() []ColumnConfig {
	cols := []ColumnConfig{
		{Key: "id", Header: "#", Width: 8, Align: "right", Fixed: "left"},
	}
	for i := range 12 {
		key := fmt.Sprintf("col%d", i+1)
		cols = append(cols, ColumnConfig{
			Key:         key,
			Header:      strings.ToUpper(key),
			Width:       12,
			Recyclable:  true,
			Reorderable: true,
			Resizable:   true,
		})
	}
	return append(cols, ColumnConfig{Key: "total", Header: "TOTAL", Width: 10, Align: "right", Fixed: "right"})
}

// New returns a viper instance with defaults and environment overrides
// applied. When path is empty ./gridview.yaml is used if present.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gridview")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration at path.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = DefaultColumns()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Table.Rows < 0 {
		return fmt.Errorf("table.rows must not be negative")
	}
	if c.Table.RowHeight <= 0 {
		return fmt.Errorf("table.row_height must be a positive integer")
	}
	if c.Table.Overscan < 0 {
		return fmt.Errorf("table.overscan must not be negative")
	}
	if c.Table.HeaderHeight < 0 || c.Table.FooterHeight < 0 {
		return fmt.Errorf("table.header_height and table.footer_height must not be negative")
	}
	if _, err := logger.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	if _, err := logger.ParseType(c.Logger.Format); err != nil {
		return fmt.Errorf("logger.format: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Columns))
	for i, col := range c.Columns {
		if err := col.Validate(); err != nil {
			return fmt.Errorf("columns[%d]: %w", i, err)
		}
		if _, ok := seen[col.Key]; ok {
			return fmt.Errorf("columns[%d]: duplicate key %q", i, col.Key)
		}
		seen[col.Key] = struct{}{}
	}
	return nil
}

// Validate checks one column.
func (c ColumnConfig) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("key is required")
	}
	if c.Width <= 0 {
		return fmt.Errorf("width of %q must be a positive integer", c.Key)
	}
	if _, err := parseAlign(c.Align); err != nil {
		return err
	}
	switch c.Fixed {
	case "", "left", "right":
	default:
		return fmt.Errorf("fixed of %q must be left, right or empty, got %q", c.Key, c.Fixed)
	}
	return nil
}

// Column converts the configuration into a column definition.
func (c ColumnConfig) Column() column.Column {
	align, _ := parseAlign(c.Align)
	header := c.Header
	if header == "" {
		header = c.Key
	}
	return column.Column{
		Key:         c.Key,
		Header:      header,
		Width:       c.Width,
		MinWidth:    c.MinWidth,
		MaxWidth:    c.MaxWidth,
		Align:       align,
		Recyclable:  c.Recyclable,
		Resizable:   c.Resizable,
		Reorderable: c.Reorderable,
	}
}

func parseAlign(s string) (column.Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return column.AlignLeft, nil
	case "center":
		return column.AlignCenter, nil
	case "right":
		return column.AlignRight, nil
	default:
		return column.AlignLeft, fmt.Errorf("unknown alignment %q", s)
	}
}

// Layout groups the configured columns by zone.
func (c *Config) Layout() column.Layout {
	var left, scrollable, right []column.Column
	for _, cc := range c.Columns {
		switch cc.Fixed {
		case "left":
			left = append(left, cc.Column())
		case "right":
			right = append(right, cc.Column())
		default:
			scrollable = append(scrollable, cc.Column())
		}
	}
	return column.NewLayout(left, scrollable, right)
}

// LoggerOptions converts the logger section. The caller provides the
// destination.
func (c *Config) LoggerOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Logger.Level)
	typ, _ := logger.ParseType(c.Logger.Format)
	return logger.Options{Level: level, Type: typ}
}
