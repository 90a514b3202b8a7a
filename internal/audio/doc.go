// Package audio plays pronunciation clips.
//
// # Playback
//
// A Player plays a byte payload to completion. CommandPlayer pipes the clip
// to an external program such as mpg123:
//
//	player, err := audio.NewCommandPlayer("mpg123 -q -", logger)
//	err = audio.PlayAndWait(ctx, player, clip, 30*time.Second, indicator)
//
// PlayAndWait is a blocking rendezvous. It returns when the player exits,
// when the timeout passes (ErrPlaybackTimeout) or when the optional
// Indicator reports ErrInterrupted.
//
// # Clip Metadata
//
// InspectClip reads the ID3 title and artist of a clip. Annotate uses them
// to label the clip in the output:
//
//	_ = audio.Annotate(clip)
//	fmt.Println(clip.Label())
package audio
