package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/gridview/config"
	"github.com/hnimtadd/gridview/logger"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

type flags struct {
	config       string
	rows         int
	noVirtualize bool
	logFile      string
	dump         bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "gridview",
		Short: "Scroll a synthetic table through the gridview render engine.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rows") {
				cfg.Table.Rows = f.rows
			}
			if f.noVirtualize {
				cfg.Table.VirtualizeColumns = false
			}
			if f.logFile != "" {
				cfg.Logger.File = f.logFile
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log, closeLog := openLogger(cfg)
			defer closeLog()

			if f.dump {
				return dump(cmd.OutOrStdout(), cfg, log)
			}
			screen, err := newScreen()
			if err != nil {
				return fmt.Errorf("screen: %w", err)
			}
			return run(screen, cfg, log)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "config file (default is ./gridview.yaml)")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "number of rows, overrides table.rows")
	cmd.Flags().BoolVar(&f.noVirtualize, "no-virtualize", false, "render every scrollable column on every pass")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "print one frame of the configured viewport size and exit")
	return cmd
}

// openLogger writes to a rotated log file, or nowhere when none is set.
func openLogger(cfg *config.Config) (logger.Logger, func()) {
	if cfg.Logger.File == "" {
		return logger.Nop(), func() {}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.Logger.File,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
	}
	opts := cfg.LoggerOptions()
	opts.Buffer = file
	return logger.New(opts), func() { _ = file.Close() }
}

// run owns screen until the user quits.
func run(screen tcell.Screen, cfg *config.Config, log logger.Logger) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	defer screen.DisableMouse()

	a := newApp(screen, cfg, log)
	defer a.close()
	return a.loop()
}

// dump renders a single settled frame off screen and prints it.
func dump(w io.Writer, cfg *config.Config, log logger.Logger) error {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(cfg.Viewport.Width, cfg.Viewport.Height)

	a := newApp(screen, cfg, log)
	defer a.close()
	a.draw()

	width, height := screen.Size()
	for y := range height {
		line := make([]rune, 0, width)
		for x := range width {
			r, _, _, _ := screen.GetContent(x, y)
			line = append(line, r)
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

func settleDelay(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Table.SettleMs) * time.Millisecond
}
