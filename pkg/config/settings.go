package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/snark87/quantum-simulator/pkg/simulation"
)

// EnvPrefix is the prefix of every environment variable read through viper
const EnvPrefix = "QSIM"

// Settings holds the process-wide configuration of the quantum-sim tool
type Settings struct {
	LogLevel   string            `mapstructure:"log_level" yaml:"log_level"`
	NoColor    bool              `mapstructure:"no_color" yaml:"no_color"`
	Server     ServerSettings    `mapstructure:"server" yaml:"server"`
	Simulation simulation.Config `mapstructure:"simulation" yaml:"simulation"`
}

// ServerSettings configures the HTTP service
type ServerSettings struct {
	Port            string        `mapstructure:"port" yaml:"port"`
	AuthToken       string        `mapstructure:"auth_token" yaml:"auth_token,omitempty"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// SetDefaults registers every known key with its default value. Keys must be
// registered for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	def := simulation.DefaultConfig()

	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.auth_token", "")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("simulation.name", def.Name)
	v.SetDefault("simulation.iterations", def.Iterations)
	v.SetDefault("simulation.debug_mode", def.DebugMode)
}

// ConfigureEnv makes v read QSIM_* variables, with "." in keys mapped to "_"
// (server.port -> QSIM_SERVER_PORT). PORT is accepted for the server port.
func ConfigureEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return fmt.Errorf("failed to bind server port env: %w", err)
	}
	return nil
}

// Load decodes the effective settings from v
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}
