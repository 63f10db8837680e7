package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// newTestBootstrap returns a bootstrap that records installs instead of
// touching the package-level logger.
func newTestBootstrap(console io.Writer) (*bootstrap, *atomic.Int32) {
	var installs atomic.Int32
	b := newBootstrap(console, func(zerolog.Logger) { installs.Add(1) })
	return b, &installs
}

func TestBootstrap_FileAndConsole(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	var console bytes.Buffer
	b, installs := newTestBootstrap(&console)

	cfg := NewConfigBuilder().LogDir(dir).LogFilename("test.log").UseANSI(false).Component("worker").Build()
	require.NoError(t, b.init(cfg))
	assert.True(t, b.isInitialized())
	assert.Equal(t, int32(1), installs.Load())

	NewZerologAdapter(b.logger()).Info("job finished", Int("jobs", 3))

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	for _, out := range []string{string(data), console.String()} {
		assert.Contains(t, out, "job finished")
		assert.Contains(t, out, "jobs=3")
		assert.Contains(t, out, "component=worker")
		assert.Contains(t, out, "INF")
	}
	assert.NotContains(t, string(data), "\x1b[")
}

func TestBootstrap_AppendsToExistingFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	b, _ := newTestBootstrap(io.Discard)
	require.NoError(t, b.init(NewConfigBuilder().LogDir(dir).EnableConsole(false).Build()))
	l := b.logger()
	l.Warn().Msg("next run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous run")
	assert.Contains(t, string(data), "next run")
}

func TestBootstrap_ConsoleOnlyRespectsLevel(t *testing.T) {
	t.Parallel()
	var console bytes.Buffer
	b, _ := newTestBootstrap(&console)

	cfg := NewConfigBuilder().EnableFile(false).UseANSI(false).Level(zerolog.WarnLevel).Build()
	require.NoError(t, b.init(cfg))

	l := NewZerologAdapter(b.logger())
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestBootstrap_SecondCallFails(t *testing.T) {
	t.Parallel()
	b, installs := newTestBootstrap(io.Discard)
	cfg := NewConfigBuilder().LogDir(t.TempDir()).Build()

	require.NoError(t, b.init(cfg))
	err := b.init(cfg)
	require.ErrorIs(t, err, apperrors.ErrAlreadyInitialized)
	assert.Equal(t, int32(1), installs.Load())
}

func TestBootstrap_ConcurrentInit(t *testing.T) {
	t.Parallel()
	const callers = 32
	b, installs := newTestBootstrap(io.Discard)
	cfg := NewConfigBuilder().LogDir(t.TempDir()).Build()

	var successes, rejected atomic.Int32
	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			err := b.init(cfg)
			switch {
			case err == nil:
				successes.Add(1)
			case apperrors.KindOf(err) == apperrors.ErrAlreadyInitialized:
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(callers-1), rejected.Load())
	assert.Equal(t, int32(1), installs.Load())
}

func TestBootstrap_FailureInstallsNothing(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	b, installs := newTestBootstrap(io.Discard)

	t.Run("directory cannot be created", func(t *testing.T) {
		err := b.init(NewConfigBuilder().LogDir(filepath.Join(blocker, "logs")).Build())
		require.ErrorIs(t, err, apperrors.ErrIO)
		var ioErr apperrors.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, filepath.Join(blocker, "logs"), ioErr.Path)
	})

	t.Run("file path is a directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(tmp, "taken"), 0o755))
		err := b.init(NewConfigBuilder().LogDir(tmp).LogFilename("taken").Build())
		require.ErrorIs(t, err, apperrors.ErrIO)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		err := b.init(NewConfigBuilder().EnableConsole(false).EnableFile(false).Build())
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	assert.False(t, b.isInitialized())
	assert.Equal(t, int32(0), installs.Load())

	require.NoError(t, b.init(NewConfigBuilder().LogDir(tmp).Build()), "retry with corrected configuration")
	assert.True(t, b.isInitialized())
}

// TestInitWithDefault exercises the package-level bootstrap. It runs once per
// process, so it is the only test that touches the global logger.
func TestInitWithDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"LOG_DIR", "LOG_FILE", "LOG_CONSOLE", "LOG_FILE_ENABLED"} {
		t.Setenv("GOCOMMON_"+key, "")
	}
	t.Setenv("GOCOMMON_LOG_LEVEL", "debug")
	prevLogger, prevContext := log.Logger, zerolog.DefaultContextLogger
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.DefaultContextLogger = prevContext
	})

	assert.False(t, IsInitialized())
	require.NoError(t, InitWithDefault())
	assert.True(t, IsInitialized())

	Default().Info("bootstrapped", String("mode", "default"))
	Default().Debug("level taken from the environment")

	data, err := os.ReadFile(filepath.Join(DefaultLogDir, DefaultLogFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "bootstrapped")
	assert.Contains(t, string(data), "mode=default")
	assert.Contains(t, string(data), "level taken from the environment")

	err = InitWithDefault()
	require.ErrorIs(t, err, apperrors.ErrAlreadyInitialized)
	err = InitWithConfig(NewConfigBuilder().EnableFile(false).Build())
	require.ErrorIs(t, err, apperrors.ErrAlreadyInitialized)
}
