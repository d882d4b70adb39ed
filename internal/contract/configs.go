package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhollman/breeze/schema"
)

// Default values for configuration.
const (
	DefaultSkinType     = 3
	DefaultMinDuration  = 1.5 // hours
	DefaultPrecision    = 1
	DefaultHistoryLimit = 25
	MaxHistoryLimit     = 1000
	DefaultLocale       = "en"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the validated runtime configuration for a command.
type Config struct {
	InputPath string

	Locale            string
	SkinType          int
	MigraineSensitive bool
	MinDuration       float64 // hours
	Simple            bool    // use the compressed rain/UV ladders

	Detail     bool
	Explain    bool
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // terminal width override (0 = auto-detect)

	HistoryLimit int

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // please use env var as this is plaintext

	UseColors bool
}

// ProfileConfig holds profiling configuration.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig enables profiling when a prefix is configured.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ValidateDatabaseConnectionString performs basic shape checks on the
// connection string for SQL backends. SQLite and none need no string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag.
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Locale           string `mapstructure:"locale"`
	SkinType         int    `mapstructure:"skin-type"`
	Migraine         bool   `mapstructure:"migraine"`
	MinDuration      string `mapstructure:"min-duration"`
	Detail           bool   `mapstructure:"detail"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from score/checks flags ---
	Explain bool `mapstructure:"explain"`
	Simple  bool `mapstructure:"simple"`

	// --- Fields from history flags ---
	Limit int `mapstructure:"limit"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = input.InputPathStr

	// --- 1. Locale ---
	cfg.Locale = strings.TrimSpace(input.Locale)
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}

	// --- 2. Skin type ---
	if input.SkinType < 1 || input.SkinType > 6 {
		return fmt.Errorf("skin-type must be between 1 and 6 (received %d)", input.SkinType)
	}
	cfg.SkinType = input.SkinType
	cfg.MigraineSensitive = input.Migraine

	// --- 3. Minimum window duration ---
	minDur, err := parseDurationHours(input.MinDuration)
	if err != nil {
		return err
	}
	cfg.MinDuration = minDur

	// --- 4. Precision and output ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 5. History limit ---
	cfg.HistoryLimit = input.Limit
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.HistoryLimit > MaxHistoryLimit {
		return fmt.Errorf("limit cannot exceed %d (received %d)", MaxHistoryLimit, cfg.HistoryLimit)
	}

	// --- 6. Persistence backends ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect

	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if input.HistoryBackend == "" {
		cfg.HistoryBackend = cfg.CacheBackend
	} else if _, ok := schema.ValidBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect

	// --- 7. Misc flags ---
	cfg.UseColors = parseBoolFlag(input.Color, true)
	cfg.Explain = input.Explain
	cfg.Detail = input.Detail
	cfg.Simple = input.Simple

	return nil
}

// parseDurationHours accepts either a plain hour count ("1.5") or a Go
// duration string ("90m").
func parseDurationHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMinDuration, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("min-duration must be positive (received %s)", s)
		}
		return d.Hours(), nil
	}
	var hours float64
	if _, err := fmt.Sscanf(s, "%f", &hours); err != nil || hours <= 0 {
		return 0, fmt.Errorf("invalid min-duration '%s'. use hours (1.5) or a duration (90m)", s)
	}
	return hours, nil
}

// parseBoolFlag interprets yes/no style string flags.
func parseBoolFlag(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
