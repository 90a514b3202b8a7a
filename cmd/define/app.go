package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/handiism/define/internal/audio"
	"github.com/handiism/define/internal/cli"
	"github.com/handiism/define/internal/config"
	dhttp "github.com/handiism/define/internal/http"
	"github.com/handiism/define/internal/logging"
	"github.com/handiism/define/internal/lookup"
	"github.com/handiism/define/internal/model"
	"github.com/handiism/define/internal/present"
	"github.com/handiism/define/internal/tui"
	"github.com/handiism/define/internal/wordnik"
)

// app holds the process boundary so tests can replace it.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// configPath is resolved with config.DefaultPath when empty.
	configPath string
	transport  wordnik.Transport
	// player is built from the configured command when nil.
	player audio.Player
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		transport: dhttp.NewClient(),
	}
}

// run performs the lookup for a parsed request and renders it.
func (a *app) run(ctx context.Context, req *cli.Request) error {
	settings, err := a.loadSettings()
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	logger := logging.New(settings.LogLevel, settings.LogFormat, a.stderr)
	for _, w := range req.Warnings() {
		logger.Warn(w)
	}
	if settings.APIKey == "" {
		logger.Warn("no api key configured; set api_key in the config file or WORDNIK_API_KEY")
	}

	client := wordnik.NewClient(settings.BaseURL, settings.APIKey, a.transport, logger)
	result, err := lookup.NewService(client, logger).Lookup(ctx, req)
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	if result.Clip != nil {
		if err := audio.Annotate(result.Clip); err != nil {
			logger.Debug("clip has no readable tag", slog.String("error", err.Error()))
		}
	}

	if err := present.New(a.stdout, newRenderer(a.stdout)).Render(result); err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	if result.Clip != nil {
		a.play(ctx, settings, result.Clip, logger)
	}
	return nil
}

func (a *app) loadSettings() (*config.Settings, error) {
	path := a.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// play blocks until the clip has played. Failures never change the exit
// code; they are only logged.
func (a *app) play(ctx context.Context, settings *config.Settings, clip *model.AudioClip, logger *slog.Logger) {
	player := a.player
	if player == nil {
		cp, err := audio.NewCommandPlayer(settings.PlayerCommand, logger)
		if err != nil {
			logger.Warn("audio playback unavailable", slog.String("error", err.Error()))
			return
		}
		player = cp
	}

	var ind audio.Indicator
	if isTerminal(a.stderr) && isTerminal(a.stdin) {
		ind = tui.NewIndicator(a.stdin, a.stderr, clip.Label(), settings.PlaybackTimeout())
	}

	err := audio.PlayAndWait(ctx, player, clip, settings.PlaybackTimeout(), ind)
	switch {
	case err == nil:
	case errors.Is(err, audio.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Debug("audio playback stopped", slog.String("error", err.Error()))
	default:
		logger.Warn("audio playback failed", slog.String("error", err.Error()))
	}
}
