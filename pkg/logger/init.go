package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// bootstrap guards the one-time installation of a logger. The mutex is held
// for the whole initialization so concurrent callers never observe a
// half-configured sink.
type bootstrap struct {
	mu          sync.Mutex
	initialized bool
	// file stays open for the life of the process once installed.
	file    *os.File
	console io.Writer
	install func(zerolog.Logger)
	current zerolog.Logger
}

func newBootstrap(console io.Writer, install func(zerolog.Logger)) *bootstrap {
	return &bootstrap{
		console: console,
		install: install,
		current: zerolog.Nop(),
	}
}

var global = newBootstrap(os.Stdout, installGlobal)

func installGlobal(l zerolog.Logger) {
	log.Logger = l
	zerolog.DefaultContextLogger = &l
}

// InitWithDefault installs the process-wide logger using DefaultConfig with
// the GOCOMMON_LOG_* environment overrides applied (see ConfigBuilder.FromEnv).
// With none of those variables set it is exactly DefaultConfig.
func InitWithDefault() error {
	return InitWithConfig(NewConfigBuilder().FromEnv().Build())
}

// InitWithConfig installs the process-wide logger described by cfg.
//
// It returns an error matching apperrors.ErrAlreadyInitialized if a previous
// call succeeded, apperrors.ErrInvalidInput if cfg enables no usable sink,
// and apperrors.ErrIO if the log directory or file cannot be created.
func InitWithConfig(cfg Config) error {
	return global.init(cfg)
}

// IsInitialized reports whether a process-wide logger has been installed.
func IsInitialized() bool {
	return global.isInitialized()
}

func (b *bootstrap) init(cfg Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return apperrors.DomainError{Op: "logger init", Kind: apperrors.ErrAlreadyInitialized}
	}
	if err := cfg.Validate(); err != nil {
		return apperrors.WrapError(err, "logger init")
	}

	logger, file, err := newLogger(cfg, b.console)
	if err != nil {
		return apperrors.WrapError(err, "logger init")
	}

	b.install(logger)
	b.current = logger
	b.file = file
	b.initialized = true

	logger.Debug().
		Str("log_dir", cfg.logDir).
		Str("log_file", cfg.logFilename).
		Bool("console", cfg.enableConsole).
		Bool("file", cfg.enableFile).
		Msg("logger initialized")
	return nil
}

func (b *bootstrap) isInitialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

func (b *bootstrap) logger() zerolog.Logger {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// newLogger opens the configured sinks and composes them into one logger.
// The returned file is nil when file output is disabled.
func newLogger(cfg Config, console io.Writer) (zerolog.Logger, *os.File, error) {
	timeFormat := cfg.withDefaultTimeFormat()
	var (
		writers []io.Writer
		file    *os.File
	)

	if cfg.enableFile {
		if err := os.MkdirAll(cfg.logDir, 0o755); err != nil {
			return zerolog.Logger{}, nil, apperrors.IOError{Op: "create log directory", Path: cfg.logDir, Cause: err}
		}
		path := filepath.Join(cfg.logDir, cfg.logFilename)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, apperrors.IOError{Op: "open log file", Path: path, Cause: err}
		}
		file = f
		writers = append(writers, zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: timeFormat})
	}

	if cfg.enableConsole {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, NoColor: !cfg.useANSI, TimeFormat: timeFormat})
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.level).
		With().
		Timestamp()
	if cfg.component != "" {
		ctx = ctx.Str("component", cfg.component)
	}
	if cfg.showCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), file, nil
}
