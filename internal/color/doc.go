// Package color decides whether terminal output may carry ANSI color escapes.
//
// Color is used only when every check passes:
//   - the --no-color flag is not set
//   - NO_COLOR is unset or empty (https://no-color.org)
//   - TERM is not "dumb"
//   - the destination is an interactive terminal
//
// FORCE_COLOR=1 overrides the environment and terminal checks, but not the flag.
package color
