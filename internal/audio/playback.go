package audio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/define/internal/model"
)

// DefaultPlaybackTimeout bounds PlayAndWait when no timeout is configured.
const DefaultPlaybackTimeout = 30 * time.Second

var (
	// ErrPlaybackTimeout is returned when the player did not finish in time.
	ErrPlaybackTimeout = errors.New("playback timed out")

	// ErrInterrupted is returned by an Indicator when the user stops playback.
	ErrInterrupted = errors.New("playback interrupted")
)

// Indicator shows that playback is in progress.
//
// Wait returns nil once done is closed. It returns ErrInterrupted if the
// user asks to stop, and ctx.Err() if ctx ends first.
type Indicator interface {
	Wait(ctx context.Context, done <-chan struct{}) error
}

// PlayAndWait plays clip and blocks until playback finishes, the timeout
// passes, or the indicator is interrupted.
//
// The player and the indicator run in one errgroup: the first to fail
// cancels the other. A nil or empty clip is a no-op. A non-positive timeout
// selects DefaultPlaybackTimeout; ind may be nil.
func PlayAndWait(ctx context.Context, player Player, clip *model.AudioClip, timeout time.Duration, ind Indicator) error {
	if clip == nil || len(clip.Data) == 0 {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultPlaybackTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		return player.Play(gctx, clip.Data)
	})

	if ind != nil {
		g.Go(func() error {
			return ind.Wait(gctx, done)
		})
	}

	err := g.Wait()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrPlaybackTimeout, timeout)
	}
	return err
}
