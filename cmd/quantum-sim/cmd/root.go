package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/snark87/quantum-simulator/pkg/config"
	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/simulation"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool

	// vp and settings are populated before any command runs
	vp       *viper.Viper
	settings *config.Settings
)

// rootCmd runs the default simulation when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quantum-sim",
	Short: "Quantum simulation CLI",
	Long: `quantum-sim runs simulations locally, serves them over HTTP
and talks to a running simulation service.

Called without a subcommand it runs the default simulation once.`,
	Version:      simulation.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		simulation.Main(logger.Default())
		return nil
	},
}

func init() {
	// assigned here rather than in the literal to avoid an initialization cycle
	rootCmd.PersistentPreRunE = loadSettings

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quantum-sim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings reads the config file and environment and configures the logger
func loadSettings(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	config.SetDefaults(v)
	if err := config.ConfigureEnv(v); err != nil {
		return err
	}

	flags := map[string]*pflag.Flag{
		"log_level":   rootCmd.PersistentFlags().Lookup("log-level"),
		"no_color":    rootCmd.PersistentFlags().Lookup("no-color"),
		"server.port": serveCmd.Flags().Lookup("port"),
		"remote.url":  remoteCmd.PersistentFlags().Lookup("url"),
	}
	for key, flag := range flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", flag.Name, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath("$HOME/.quantum-sim")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly requested file must exist
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	s, err := config.Load(v)
	if err != nil {
		return err
	}
	vp, settings = v, s

	logger.SetLevel(logger.ParseLevel(s.LogLevel))
	logger.SetNoColor(s.NoColor)

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debugf("Loaded config from %s", used)
	}
	return nil
}
