// Package debug provides debug logging functionality for jot.
//
// When enabled via the --debug flag, it logs state transitions and
// internal events to a file to help diagnose issues.
package debug
