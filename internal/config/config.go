package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lk16/othello-agent/internal/search"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "OTHELLO"
	configFileName = "othello"

	defaultTimeLimitMs    = 1000
	defaultBenchGames     = 100
	defaultBenchWorkers   = 1
	defaultBenchOutputDir = "benchmarks"
	defaultServerHost     = "localhost"
	defaultServerPort     = "3000"
	defaultLogLevel       = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration values. Values are read from defaults, an optional
// othello.yaml file and OTHELLO_ prefixed environment variables, in increasing priority.
type Config struct {
	// TimeLimitMs is the search time budget per move in milliseconds.
	TimeLimitMs int `mapstructure:"time_limit_ms"`

	// DepthLimit is the search depth in plies. Zero derives it from the time limit.
	DepthLimit int `mapstructure:"depth_limit"`

	LogLevel    string      `mapstructure:"log_level"`
	Bench       BenchConfig `mapstructure:"bench"`
	Server      Server      `mapstructure:"server"`
	RedisURL    string      `mapstructure:"redis_url"`
	PostgresURL string      `mapstructure:"postgres_url"`

	// AgentServerURL makes the shell agents search on an analysis server instead of locally.
	AgentServerURL string `mapstructure:"agent_server_url"`
}

// BenchConfig configures the agent vs random benchmark.
type BenchConfig struct {
	Games     int    `mapstructure:"games"`
	Workers   int    `mapstructure:"workers"`
	OutputDir string `mapstructure:"output_dir"`
}

// Server configures the analysis server.
type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// newViper creates a viper instance with defaults and environment bindings.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("time_limit_ms", defaultTimeLimitMs)
	v.SetDefault("depth_limit", 0)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("bench.games", defaultBenchGames)
	v.SetDefault("bench.workers", defaultBenchWorkers)
	v.SetDefault("bench.output_dir", defaultBenchOutputDir)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("redis_url", "")
	v.SetDefault("postgres_url", "")
	v.SetDefault("agent_server_url", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads the configuration. An othello.yaml in one of the paths is used if it exists.
func Load(paths ...string) (*Config, error) {
	v := newViper()

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return unmarshal(v)
}

// LoadFile loads the configuration from a specific file.
func LoadFile(file string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.TimeLimitMs < 0 {
		return fmt.Errorf("%w: time_limit_ms must not be negative, got %d", ErrInvalidConfig, c.TimeLimitMs)
	}

	if c.DepthLimit < 0 {
		return fmt.Errorf("%w: depth_limit must not be negative, got %d", ErrInvalidConfig, c.DepthLimit)
	}

	if c.Bench.Games < 1 {
		return fmt.Errorf("%w: bench.games must be positive, got %d", ErrInvalidConfig, c.Bench.Games)
	}

	if c.Bench.Workers < 1 {
		return fmt.Errorf("%w: bench.workers must be positive, got %d", ErrInvalidConfig, c.Bench.Workers)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// TimeLimit returns the search time budget.
func (c *Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitMs) * time.Millisecond
}

// SetTimeLimit changes the time budget, for example after prompting the user.
func (c *Config) SetTimeLimit(timeLimit time.Duration) {
	c.TimeLimitMs = int(timeLimit.Milliseconds())
}

// Search returns the search limits. The depth limit is derived from the time limit unless set.
func (c *Config) Search() search.Config {
	cfg := search.NewConfig(c.TimeLimit())
	if c.DepthLimit > 0 {
		cfg.DepthLimit = c.DepthLimit
	}
	return cfg
}

// Address returns the address the server listens on.
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}
