// Config loading for the datacleaner CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	configDirName  = ".datacleaner"
	envPrefix      = "DATACLEANER"
	envConfigDir   = "DATACLEANER_CONFIG_DIR"

	// Config keys.
	cfgKeyLogLevel        = "log_level"
	cfgKeyLogFormat       = "log_format"
	cfgKeyExportDir       = "export_dir"
	cfgKeyOutlierMethod   = "outlier_method"
	cfgKeyMissingStrategy = "missing_strategy"
	cfgKeyKNNNeighbors    = "knn_neighbors"
	cfgKeyOutputFormat    = "output_format"
	cfgKeySheetName       = "sheet_name"
	cfgKeyTableName       = "table_name"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Datacleaner CLI configuration

# Logging
log_level: info
log_format: text

# Cleaning defaults
outlier_method: iqr
missing_strategy: mean
knn_neighbors: 5

# Export defaults
output_format: csv
sheet_name: Data
table_name: data

# Directory for relative export paths (optional)
# export_dir:
`

// defaultConfig returns a Viper instance carrying only built-in defaults.
// Used until PersistentPreRunE loads the real configuration.
func defaultConfig() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetDefault(cfgKeyOutlierMethod, "iqr")
	v.SetDefault(cfgKeyMissingStrategy, "mean")
	v.SetDefault(cfgKeyKNNNeighbors, 5)
	v.SetDefault(cfgKeyOutputFormat, "csv")
	v.SetDefault(cfgKeySheetName, "Data")
	v.SetDefault(cfgKeyTableName, "data")
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > DATACLEANER_CONFIG_DIR env > $(CWD)/.datacleaner.
func resolveConfigDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, configDirName), nil
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. Environment variables with the DATACLEANER_ prefix override
// file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
