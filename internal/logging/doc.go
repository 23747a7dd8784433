// Package logging provides slog-based logging for the presetctl CLI.
//
// The default handler produces compact, colorized text output when the
// destination is a terminal, and plain text otherwise. JSON output is
// available for log files and machine consumption via [FormatJSON].
//
// Verbosity maps onto levels through [LevelFromVerbosity]: the CLI is quiet
// by default (warnings and errors only) and each -v raises the detail.
//
// In tests, use [ForTest] to route log output through testing.T so it only
// appears for failing tests or with -v.
package logging
