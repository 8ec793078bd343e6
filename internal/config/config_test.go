package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 1000, cfg.TimeLimitMs)
	require.Equal(t, time.Second, cfg.TimeLimit())
	require.Equal(t, 0, cfg.DepthLimit)
	require.Equal(t, 100, cfg.Bench.Games)
	require.Equal(t, 1, cfg.Bench.Workers)
	require.Equal(t, "benchmarks", cfg.Bench.OutputDir)
	require.Equal(t, "localhost:3000", cfg.Server.Address())
	require.Empty(t, cfg.RedisURL)
	require.Empty(t, cfg.PostgresURL)

	searchCfg := cfg.Search()
	require.Equal(t, 9, searchCfg.DepthLimit)
	require.Equal(t, time.Second, searchCfg.TimeLimit)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("OTHELLO_TIME_LIMIT_MS", "100")
	t.Setenv("OTHELLO_BENCH_GAMES", "7")
	t.Setenv("OTHELLO_SERVER_PORT", "8080")
	t.Setenv("OTHELLO_LOG_LEVEL", "debug")
	t.Setenv("OTHELLO_AGENT_SERVER_URL", "http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 100, cfg.TimeLimitMs)
	require.Equal(t, 7, cfg.Bench.Games)
	require.Equal(t, "localhost:8080", cfg.Server.Address())
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "http://localhost:3000", cfg.AgentServerURL)
	require.Equal(t, 4, cfg.Search().DepthLimit)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte("time_limit_ms: 50\ndepth_limit: 6\nbench:\n  workers: 4\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "othello.yaml"), content, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, 50, cfg.TimeLimitMs)
	require.Equal(t, 4, cfg.Bench.Workers)
	require.Equal(t, 6, cfg.Search().DepthLimit)

	cfg, err = LoadFile(filepath.Join(dir, "othello.yaml"))
	require.NoError(t, err)
	require.Equal(t, 6, cfg.DepthLimit)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.TimeLimitMs)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TimeLimitMs: 100,
			LogLevel:    "info",
			Bench:       BenchConfig{Games: 1, Workers: 1},
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative time limit", func(c *Config) { c.TimeLimitMs = -1 }},
		{"negative depth limit", func(c *Config) { c.DepthLimit = -1 }},
		{"no games", func(c *Config) { c.Bench.Games = 0 }},
		{"no workers", func(c *Config) { c.Bench.Workers = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_SetTimeLimit(t *testing.T) {
	cfg := &Config{}
	cfg.SetTimeLimit(250 * time.Millisecond)

	require.Equal(t, 250, cfg.TimeLimitMs)
	require.Equal(t, 9, cfg.Search().DepthLimit)
}

func TestSetLogOutput(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	require.NoError(t, SetLogOutput("warn", &buf))

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	require.ErrorIs(t, SetLogOutput("loud", &buf), ErrInvalidConfig)
}
