// Package config loads the configuration of the command line tools from flags, configuration
// files and environment variables, and sets the logging verbosity accordingly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/canonical/android-strings/internal/consts"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ubuntu/decorate"
)

// Config is the configuration shared by the tools.
type Config struct {
	Verbosity int
	ResDir    string `mapstructure:"res-dir"`
	Plain     bool
}

// Init finds and reads the configuration file named name, and enables the environment variables.
// The --config flag, when set, takes precedence over the lookup.
func Init(name string, cmd *cobra.Command, vip *viper.Viper) (err error) {
	defer decorate.OnError(&err, "can't load configuration")

	// Use command-line flag for verbosity until configuration is parsed
	v, err := cmd.Flags().GetCount("verbosity")
	if err != nil {
		return fmt.Errorf("internal error: no persistent verbosity flags installed on cmd: %w", err)
	}
	SetVerboseMode(v)

	// Find a valid configuration file
	if v, err := cmd.Flags().GetString("config"); err == nil && v != "" {
		vip.SetConfigFile(v)
	} else {
		vip.SetConfigName(name)
		vip.AddConfigPath("./")
		vip.AddConfigPath("$HOME/")
		vip.AddConfigPath("/etc/")
		if binPath, err := os.Executable(); err != nil {
			log.Warningf("Failed to get the current executable path, not adding it as a config dir: %v", err)
		} else {
			vip.AddConfigPath(filepath.Dir(binPath))
		}
	}

	// Load the config
	if err := vip.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if errors.As(err, &e) {
			log.Infof("No configuration file: %v", e)
		} else {
			return fmt.Errorf("invalid configuration file: %v", err)
		}
	} else {
		log.Infof("Using configuration file: %v", vip.ConfigFileUsed())
	}

	// Parse environment variables
	vip.SetEnvPrefix(consts.EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	return nil
}

// Load reads the configuration, then applies its verbosity.
func Load(name string, cmd *cobra.Command, vip *viper.Viper) (c Config, err error) {
	if err := Init(name, cmd, vip); err != nil {
		return c, err
	}

	if err := vip.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode configuration into struct: %w", err)
	}

	SetVerboseMode(c.Verbosity)
	log.Debug("Debug mode is enabled")

	return c, nil
}

// InstallVerbosityFlag adds the -v and -vv options and returns the reference to it.
func InstallVerbosityFlag(cmd *cobra.Command, vip *viper.Viper) *int {
	r := cmd.PersistentFlags().CountP("verbosity", "v", "issue INFO (-v), DEBUG (-vv) or DEBUG with caller (-vvv) output")
	if err := vip.BindPFlag("verbosity", cmd.PersistentFlags().Lookup("verbosity")); err != nil {
		log.Warning(err)
	}
	return r
}

// InstallConfigFlag adds the --config flag to allow for custom config paths.
func InstallConfigFlag(cmd *cobra.Command) *string {
	return cmd.PersistentFlags().StringP("config", "c", "", "configuration file path")
}

// InstallResDirFlag adds the --res-dir flag selecting the resource directory to scan.
func InstallResDirFlag(cmd *cobra.Command, vip *viper.Viper) *string {
	r := cmd.PersistentFlags().String("res-dir", consts.DefaultResDir, "resource directory holding the values* locale directories")
	if err := vip.BindPFlag("res-dir", cmd.PersistentFlags().Lookup("res-dir")); err != nil {
		log.Warning(err)
	}
	return r
}

// SetVerboseMode change ErrorFormat and logs between very, middly and non verbose.
func SetVerboseMode(level int) {
	var reportCaller bool
	switch level {
	case 0:
		log.SetLevel(consts.DefaultLogLevel)
	case 1:
		log.SetLevel(log.InfoLevel)
	case 3:
		reportCaller = true
		fallthrough
	default:
		log.SetLevel(log.DebugLevel)
	}
	log.SetReportCaller(reportCaller)
}
