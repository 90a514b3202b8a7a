// Package cli parses the define command line into a Request.
//
// The grammar is a word followed by options:
//
//	define <word> [-d dict...] [-s pos] [-l n] [-f start end] [-p format] [toggles...]
//
// Parsing is a two-state machine. While idle, every token must be an
// option. After an option that takes values the parser collects values
// until the option is complete; the dictionary and pronunciation options
// also stop at the next option, which is then read again from the idle
// state. The full table lives in parser.go.
//
// Parse never prints or exits. It returns ErrHelpRequested for -u/--help and
// a *UsageError for bad input; callers decide what to print (see
// WriteUsage) and which exit code to use.
package cli
