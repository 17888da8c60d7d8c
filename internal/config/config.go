package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. LESSISMORE_PORT.
const EnvPrefix = "LESSISMORE"

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string
	Port string
	Env  string // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	MinPlayers     int
	NextRoundDelay time.Duration
	ScoreLimit     int // 0 disables the gameOver end condition
	StaleTimeout   time.Duration
	SweepInterval  time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// BindFlags registers all configuration flags on the given flag set
func BindFlags(fs *pflag.FlagSet) {
	fs.String("host", "0.0.0.0", "address to bind to (env: LESSISMORE_HOST)")
	fs.StringP("port", "p", "8080", "port to listen on (env: LESSISMORE_PORT)")
	fs.String("env", "development", "environment, development or production (env: LESSISMORE_ENV)")
	fs.Int("min-players", 2, "minimum players required to start a round (env: LESSISMORE_MIN_PLAYERS)")
	fs.Duration("next-round-delay", 5*time.Second, "pause between rounds (env: LESSISMORE_NEXT_ROUND_DELAY)")
	fs.Int("score-limit", 0, "score at which the game ends, 0 to play forever (env: LESSISMORE_SCORE_LIMIT)")
	fs.Duration("stale-timeout", 2*time.Hour, "age before an empty room is swept (env: LESSISMORE_STALE_TIMEOUT)")
	fs.Duration("sweep-interval", 10*time.Minute, "how often empty rooms are swept (env: LESSISMORE_SWEEP_INTERVAL)")
	fs.String("log-level", "info", "log level: debug, info, warn or error (env: LESSISMORE_LOG_LEVEL)")
	fs.String("log-format", "text", "log format: text or json (env: LESSISMORE_LOG_FORMAT)")
}

// Load resolves configuration from flags and environment variables,
// flags winning over environment, environment over defaults.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Host: v.GetString("host"),
			Port: v.GetString("port"),
			Env:  v.GetString("env"),
		},
		Game: GameConfig{
			MinPlayers:     v.GetInt("min-players"),
			NextRoundDelay: v.GetDuration("next-round-delay"),
			ScoreLimit:     v.GetInt("score-limit"),
			StaleTimeout:   v.GetDuration("stale-timeout"),
			SweepInterval:  v.GetDuration("sweep-interval"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("log-level"),
			Format: v.GetString("log-format"),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
