// Package tui provides the terminal indicator shown while a pronunciation
// clip plays.
//
// The indicator is a small Bubble Tea program: a spinner, the clip label
// and a bar filling up towards the playback timeout. Pressing esc, q or
// ctrl+c stops playback.
//
//	ind := tui.NewIndicator(os.Stdin, os.Stderr, clip.Label(), timeout)
//	err := audio.PlayAndWait(ctx, player, clip, timeout, ind)
//
// Only use it when stderr is a terminal; otherwise pass a nil indicator.
package tui
