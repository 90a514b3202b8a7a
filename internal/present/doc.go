// Package present renders lookup results for the terminal.
//
// Styling goes through a lipgloss.Renderer so the caller controls the color
// profile. Tests and non-terminal output use termenv.Ascii, which renders
// every style as plain text.
//
// Glosses may carry an <em>…</em> span. ResolveEmphasis removes the markers
// and reports which part of the remaining text to emphasize.
package present
