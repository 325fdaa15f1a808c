package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snark87/quantum-simulator/pkg/simulation"
)

func TestLoadSimulationConfig(t *testing.T) {
	cfg, err := LoadSimulationConfig("testdata/simulation.yaml")
	require.NoError(t, err)

	assert.Equal(t, &simulation.Config{Name: "test-sim", Iterations: 10, DebugMode: true}, cfg)
}

func TestLoadSimulationConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadSimulationConfig("testdata/partial.yaml")
	require.NoError(t, err)

	assert.Equal(t, "partial-sim", cfg.Name)
	assert.Equal(t, simulation.DefaultIterations, cfg.Iterations)
	assert.False(t, cfg.DebugMode)
}

func TestLoadSimulationConfigErrors(t *testing.T) {
	_, err := LoadSimulationConfig("testdata/missing.yaml")
	assert.ErrorContains(t, err, "config file not found")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("iterations: [1, 2"), 0644))

	_, err = LoadSimulationConfig(bad)
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestSaveAndLoadSimulationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sim.yaml")
	want := &simulation.Config{Name: "saved", Iterations: -1, DebugMode: true}

	require.NoError(t, SaveSimulationConfig(want, path))

	got, err := LoadSimulationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSimulationConfigOrDefault(t *testing.T) {
	t.Run("no path and no base", func(t *testing.T) {
		cfg, err := LoadSimulationConfigOrDefault("", nil)
		require.NoError(t, err)
		assert.Equal(t, simulation.DefaultConfig(), cfg)
	})

	t.Run("base is copied", func(t *testing.T) {
		base := &simulation.Config{Name: "base", Iterations: 3}
		cfg, err := LoadSimulationConfigOrDefault("", base)
		require.NoError(t, err)
		assert.Equal(t, base, cfg)
		assert.NotSame(t, base, cfg)
	})

	t.Run("file wins over base", func(t *testing.T) {
		cfg, err := LoadSimulationConfigOrDefault("testdata/simulation.yaml", &simulation.Config{Name: "base"})
		require.NoError(t, err)
		assert.Equal(t, "test-sim", cfg.Name)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadSimulationConfigOrDefault("testdata/missing.yaml", nil)
		assert.Error(t, err)
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvSimulationName, "env-sim")
	t.Setenv(EnvSimulationIterations, "25")
	t.Setenv(EnvSimulationDebugMode, "true")

	cfg := simulation.DefaultConfig()
	require.NoError(t, MergeWithEnvironment(cfg))

	assert.Equal(t, &simulation.Config{Name: "env-sim", Iterations: 25, DebugMode: true}, cfg)
}

func TestEnvironmentOverridesEmptyValuesIgnored(t *testing.T) {
	t.Setenv(EnvSimulationName, "")
	t.Setenv(EnvSimulationIterations, "")
	t.Setenv(EnvSimulationDebugMode, "")

	cfg := &simulation.Config{Name: "kept", Iterations: 4, DebugMode: true}
	require.NoError(t, MergeWithEnvironment(cfg))

	assert.Equal(t, &simulation.Config{Name: "kept", Iterations: 4, DebugMode: true}, cfg)
}

func TestEnvironmentOverridesInvalid(t *testing.T) {
	t.Setenv(EnvSimulationIterations, "many")

	err := MergeWithEnvironment(simulation.DefaultConfig())
	assert.ErrorContains(t, err, EnvSimulationIterations)
}

func TestCLIOverrides(t *testing.T) {
	cfg := simulation.DefaultConfig()

	err := MergeWithCLIOverrides(cfg, map[string]interface{}{
		"iterations": 15,
		"debug_mode": true,
	})
	require.NoError(t, err)

	assert.Equal(t, simulation.DefaultName, cfg.Name)
	assert.Equal(t, 15, cfg.Iterations)
	assert.True(t, cfg.DebugMode)

	assert.Error(t, MergeWithCLIOverrides(cfg, map[string]interface{}{"iterations": "lots"}))
	assert.NoError(t, MergeWithCLIOverrides(cfg, nil))
}

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	require.NoError(t, ConfigureEnv(v))
	return v
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("QSIM_SERVER_PORT", "")

	s, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.NoColor)
	assert.Equal(t, "8080", s.Server.Port)
	assert.Empty(t, s.Server.AuthToken)
	assert.Equal(t, []string{"*"}, s.Server.AllowedOrigins)
	assert.Equal(t, 15*time.Second, s.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, s.Server.IdleTimeout)
	assert.Equal(t, *simulation.DefaultConfig(), s.Simulation)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("QSIM_LOG_LEVEL", "debug")
	t.Setenv("QSIM_SERVER_AUTH_TOKEN", "secret")
	t.Setenv("QSIM_SERVER_WRITE_TIMEOUT", "5s")
	t.Setenv("QSIM_SIMULATION_NAME", "from-env")
	t.Setenv("QSIM_SIMULATION_ITERATIONS", "12")
	t.Setenv("QSIM_SIMULATION_DEBUG_MODE", "true")
	t.Setenv("PORT", "9090")

	s, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "secret", s.Server.AuthToken)
	assert.Equal(t, 5*time.Second, s.Server.WriteTimeout)
	assert.Equal(t, "9090", s.Server.Port)
	assert.Equal(t, simulation.Config{Name: "from-env", Iterations: 12, DebugMode: true}, s.Simulation)
}

func TestLoadSettingsPrefixedPortWins(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QSIM_SERVER_PORT", "7070")

	s, err := Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, "7070", s.Server.Port)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: warn
server:
  port: "6060"
simulation:
  name: file-sim
`), 0644))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "6060", s.Server.Port)
	assert.Equal(t, "file-sim", s.Simulation.Name)
	assert.Equal(t, simulation.DefaultIterations, s.Simulation.Iterations)
}
