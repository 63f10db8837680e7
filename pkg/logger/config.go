package logger

import (
	"strings"

	"github.com/agbru/gocommon/internal/config"
	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/rs/zerolog"
)

const (
	// DefaultLogDir is the directory used when none is configured.
	DefaultLogDir = "logs"
	// DefaultLogFilename is the log file name used when none is configured.
	DefaultLogFilename = "app.log"
	// DefaultTimeFormat is the timestamp layout written by both sinks.
	DefaultTimeFormat = "2006-01-02 15:04:05"
)

// Config describes the sinks installed by InitWithConfig. The zero value is
// not useful; obtain one from DefaultConfig or a ConfigBuilder.
type Config struct {
	logDir        string
	logFilename   string
	enableConsole bool
	enableFile    bool
	level         zerolog.Level
	showCaller    bool
	component     string
	useANSI       bool
	timeFormat    string
}

// DefaultConfig returns the base configuration of InitWithDefault: console
// and file output at info level, writing to logs/app.log.
func DefaultConfig() Config {
	return Config{
		logDir:        DefaultLogDir,
		logFilename:   DefaultLogFilename,
		enableConsole: true,
		enableFile:    true,
		level:         zerolog.InfoLevel,
		useANSI:       true,
		timeFormat:    DefaultTimeFormat,
	}
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	return c.logDir
}

// LogFilename returns the log file name inside LogDir.
func (c Config) LogFilename() string {
	return c.logFilename
}

// ConsoleEnabled reports whether records are written to stdout.
func (c Config) ConsoleEnabled() bool {
	return c.enableConsole
}

// FileEnabled reports whether records are appended to the log file.
func (c Config) FileEnabled() bool {
	return c.enableFile
}

// Level returns the minimum level that is written.
func (c Config) Level() zerolog.Level {
	return c.level
}

// ShowCaller reports whether records carry the calling file and line.
func (c Config) ShowCaller() bool {
	return c.showCaller
}

// Component returns the value of the "component" field, or "" for none.
func (c Config) Component() string {
	return c.component
}

// UseANSI reports whether the console sink is colored.
func (c Config) UseANSI() bool {
	return c.useANSI
}

// TimeFormat returns the timestamp layout used by both sinks.
func (c Config) TimeFormat() string {
	return c.timeFormat
}

func (c Config) withDefaultTimeFormat() string {
	if c.timeFormat == "" {
		return DefaultTimeFormat
	}
	return c.timeFormat
}

// Validate checks that the configuration describes at least one usable sink.
func (c Config) Validate() error {
	if !c.enableConsole && !c.enableFile {
		return apperrors.ValidationError{Field: "outputs", Message: "console and file output are both disabled"}
	}
	if c.enableFile {
		if strings.TrimSpace(c.logDir) == "" {
			return apperrors.ValidationError{Field: "log_dir", Message: "must not be empty when file output is enabled"}
		}
		if strings.TrimSpace(c.logFilename) == "" {
			return apperrors.ValidationError{Field: "log_filename", Message: "must not be empty when file output is enabled"}
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Builder
// ─────────────────────────────────────────────────────────────────────────────

// ConfigBuilder assembles a Config. Setters modify the builder in place and
// return it so calls can be chained.
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder returns a builder seeded with DefaultConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultConfig()}
}

// LogDir sets the directory created for the log file.
func (b *ConfigBuilder) LogDir(dir string) *ConfigBuilder {
	b.cfg.logDir = dir
	return b
}

// LogFilename sets the log file name inside the log directory.
func (b *ConfigBuilder) LogFilename(name string) *ConfigBuilder {
	b.cfg.logFilename = name
	return b
}

// EnableConsole toggles the stdout sink.
func (b *ConfigBuilder) EnableConsole(enabled bool) *ConfigBuilder {
	b.cfg.enableConsole = enabled
	return b
}

// EnableFile toggles the append-only file sink.
func (b *ConfigBuilder) EnableFile(enabled bool) *ConfigBuilder {
	b.cfg.enableFile = enabled
	return b
}

// Level sets the minimum level written by every sink.
func (b *ConfigBuilder) Level(level zerolog.Level) *ConfigBuilder {
	b.cfg.level = level
	return b
}

// ShowCaller adds the calling file and line to every record.
func (b *ConfigBuilder) ShowCaller(enabled bool) *ConfigBuilder {
	b.cfg.showCaller = enabled
	return b
}

// Component tags every record with a "component" field. Empty disables it.
func (b *ConfigBuilder) Component(name string) *ConfigBuilder {
	b.cfg.component = name
	return b
}

// UseANSI toggles color on the console sink. The file sink is never colored.
func (b *ConfigBuilder) UseANSI(enabled bool) *ConfigBuilder {
	b.cfg.useANSI = enabled
	return b
}

// TimeFormat sets the time.Format layout of record timestamps.
func (b *ConfigBuilder) TimeFormat(layout string) *ConfigBuilder {
	b.cfg.timeFormat = layout
	return b
}

// envOverrides maps GOCOMMON_LOG_* variables onto Config fields.
// Unparseable values keep the current setting.
var envOverrides = []config.EnvOverride[Config]{
	{EnvKey: "LOG_DIR", Apply: func(c *Config, v string) { c.logDir = v }},
	{EnvKey: "LOG_FILE", Apply: func(c *Config, v string) { c.logFilename = v }},
	{EnvKey: "LOG_CONSOLE", Apply: func(c *Config, v string) { c.enableConsole = config.ParseBoolEnv(v, c.enableConsole) }},
	{EnvKey: "LOG_FILE_ENABLED", Apply: func(c *Config, v string) { c.enableFile = config.ParseBoolEnv(v, c.enableFile) }},
	{EnvKey: "LOG_LEVEL", Apply: func(c *Config, v string) {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v))); err == nil {
			c.level = lvl
		}
	}},
}

// FromEnv applies GOCOMMON_LOG_DIR, GOCOMMON_LOG_FILE, GOCOMMON_LOG_CONSOLE,
// GOCOMMON_LOG_FILE_ENABLED and GOCOMMON_LOG_LEVEL on top of the current
// builder state.
func (b *ConfigBuilder) FromEnv() *ConfigBuilder {
	config.ApplyEnvOverrides(&b.cfg, envOverrides)
	return b
}

// Build returns a copy of the accumulated configuration. The builder may be
// reused afterwards without affecting the returned value.
func (b *ConfigBuilder) Build() Config {
	return b.cfg
}
