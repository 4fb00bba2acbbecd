package main

import (
	"fmt"
	"os"

	"pose-annotator/internal/app"
	"pose-annotator/internal/config"
	"pose-annotator/internal/logger"
	"pose-annotator/internal/shutdown"

	"fyne.io/fyne/v2"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	jsonLogs   bool
	logFile    string
	startDir   string
)

var rootCmd = &cobra.Command{
	Use:     "pose-annotator [image]",
	Short:   "Manual 2D pose keypoint annotator",
	Long:    "Click body joints on an image in a fixed order and export them as a plain-text keypoint file next to the image.",
	Version: app.AppVersion,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/pose-annotator/config.toml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config and $POSE_LOG_LEVEL)")
	rootCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "Write JSON log lines instead of console output")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Also write logs to this file, rotated")
	rootCmd.Flags().StringVar(&startDir, "start-dir", "", "Directory the first file dialog opens in")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cfg.LoggerOptions())
	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register("logger", log.Shutdown)

	application, err := app.NewApplication(cfg, log, shutdownMgr)
	if err != nil {
		log.Error("Main", err, nil)
		shutdownMgr.Shutdown()
		return fmt.Errorf("application initialization failed: %w", err)
	}

	shutdownMgr.Listen(func() {
		fyne.Do(application.Quit)
	})

	var initial string
	if len(args) == 1 {
		initial = args[0]
	}
	if err := application.Run(initial); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}

	// Quit normally runs the steps already; this covers the event loop
	// ending some other way.
	shutdownMgr.Shutdown()
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Log.JSON = jsonLogs
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}
	if cmd.Flags().Changed("start-dir") {
		cfg.Dialogs.LastDirectory = startDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
