// Package logger bootstraps the process-wide zerolog logger and provides a
// small structured logging interface on top of it.
//
// InitWithDefault and InitWithConfig attach a console sink, a plain-text file
// sink, or both, and install the result as github.com/rs/zerolog/log.Logger.
// Installation happens at most once per process: later calls return
// apperrors.ErrAlreadyInitialized and leave the installed sink untouched. A
// failed call installs nothing, so the caller may fix the configuration and
// try again.
//
// InitWithDefault honors the GOCOMMON_LOG_* environment overrides, so the
// level filter can be raised or lowered without code changes. InitWithConfig
// uses its argument as given.
//
// Level filtering and record formatting are delegated to zerolog.
package logger
