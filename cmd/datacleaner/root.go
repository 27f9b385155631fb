// Root command for the datacleaner CLI.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes: 0 success, 1 user error (bad input, bad flags),
// 2 system error (I/O, internal failure).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
	flagVerbose   bool
)

// config holds the loaded configuration. Set by PersistentPreRunE so all
// subcommands can read defaults from it.
var config = defaultConfig()

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:     "datacleaner",
	Short:   "Datacleaner cleans, analyzes, and validates tabular datasets",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version output needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		config = cfg

		configureLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.datacleaner)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
}

// configureLogger applies log settings from config and flags. The --verbose
// flag overrides the configured level.
func configureLogger() {
	level, err := logrus.ParseLevel(config.GetString(cfgKeyLogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if config.GetString(cfgKeyLogFormat) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
