// Package commands implements the pdf2dxf command line.
package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/pdf2dxf/cmd/pdf2dxf/ui"
	"github.com/tsawler/pdf2dxf/internal/config"
	"github.com/tsawler/pdf2dxf/internal/logging"
)

// app holds state shared by all subcommands
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "pdf2dxf",
		Short: "Rebuild CAD geometry from vector PDF pages",
		Long: `pdf2dxf reads a page bundle (page geometry plus content streams extracted
from a PDF), rebuilds lines, polylines, circles, arcs and text from the
vector drawing commands and writes the result as a DXF drawing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (console or json)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(convertCmd(a), previewCmd(a), inspectCmd(a))
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command) error {
	if a.noColor {
		ui.DisableColor()
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With().Str("run_id", uuid.NewString()).Logger()
	return nil
}
