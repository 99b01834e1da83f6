package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mordilloSan/go-sinklog/logger"
	"github.com/mordilloSan/go-sinklog/palette"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Example demonstrating go-sinklog usage.
// Usage: ./go-sinklog [--file app.log] [--release] [--palette colors.toml] [--color auto]
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		filePath    string
		release     bool
		palettePath string
		colorMode   string
	)

	cmd := &cobra.Command{
		Use:           "go-sinklog",
		Short:         "Write every log level to the console and optional file sinks",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := logger.ParseColorMode(colorMode)
			if !ok {
				return fmt.Errorf("invalid --color %q: want always, never or auto", colorMode)
			}
			config := logger.Config{
				StdoutColor: mode,
				FilePath:    filePath,
			}
			if release {
				config.Build = logger.ReleaseBuild
			}
			if palettePath != "" {
				s, err := palette.Load(afero.NewOsFs(), palettePath)
				if err != nil {
					return err
				}
				config.Settings = &s
			}
			return run(config)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "also append plain output to this file")
	cmd.Flags().BoolVar(&release, "release", false, "gate levels as a release build")
	cmd.Flags().StringVar(&palettePath, "palette", "", "TOML color palette")
	cmd.Flags().StringVar(&colorMode, "color", "always", "stdout coloring: always, never or auto")

	return cmd
}

func run(config logger.Config) error {
	logger.Init(config)
	defer logger.Close() // Don't forget to close the log file!

	logger.Info("info", "is", "debug", "only")
	logger.Warn("warn is debug only too")
	logger.Success("success", 42)
	logger.Notify("notify", true)
	logger.Error("error", fmt.Errorf("something happened"))

	logger.NewLine(1)
	logger.In(logger.All).Info("info forced into every build")
	logger.In(logger.ReleaseOnly).Notify("release builds only")

	// Capture a few lines in memory without the other sinks seeing them.
	var captured bytes.Buffer
	err := logger.WithSinks(func(r *logger.Registration) error {
		logger.Success("seen by every sink, including the buffer")
		return r.Log(logger.NotifyLevel, "seen by the buffer only")
	}, logger.Entry{Dest: &captured})
	if err != nil {
		return err
	}

	logger.Notify("captured", captured.Len(), "bytes")
	return nil
}
