package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// ErrNoPlayer is returned when the configured player command is empty.
var ErrNoPlayer = errors.New("no player command configured")

// Player plays an audio payload and returns once playback has finished.
type Player interface {
	Play(ctx context.Context, clip []byte) error
}

// CommandPlayer plays clips by piping them to an external program on stdin,
// e.g. "mpg123 -q -" or "ffplay -nodisp -autoexit -loglevel quiet -".
type CommandPlayer struct {
	name string
	args []string
	log  *slog.Logger
}

// NewCommandPlayer parses command into a program and its arguments.
// Arguments are split on whitespace; quoting is not supported.
func NewCommandPlayer(command string, logger *slog.Logger) (*CommandPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoPlayer
	}
	return &CommandPlayer{
		name: fields[0],
		args: fields[1:],
		log:  logger.With("component", "player"),
	}, nil
}

// Play runs the command with clip on stdin and waits for it to exit.
// The process is killed when ctx is done.
func (p *CommandPlayer) Play(ctx context.Context, clip []byte) error {
	cmd := exec.CommandContext(ctx, p.name, p.args...)
	cmd.Stdin = bytes.NewReader(clip)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	p.log.DebugContext(ctx, "starting player", slog.String("command", p.name), slog.Int("bytes", len(clip)))

	err := cmd.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", p.name, err, msg)
		}
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return nil
}
