// Package config provides configuration management for define.
//
// This package handles:
//   - Loading settings from a JSON file and the environment
//   - Creating the file with defaults on first run
//   - Validation
//
// # Location
//
// The file lives at define/config.json under os.UserConfigDir, e.g.
// ~/.config/define/config.json on Linux. Set DEFINE_CONFIG to use another
// path.
//
// # Loading
//
//	path, _ := config.DefaultPath()
//	settings, err := config.Load(path)
//
// # Configuration Options
//
//	api_key                   WORDNIK_API_KEY          (empty)
//	base_url                  DEFINE_BASE_URL          https://api.wordnik.com/v4/word.json
//	player_command            DEFINE_PLAYER            mpg123 -q -
//	playback_timeout_seconds  DEFINE_PLAYBACK_TIMEOUT  30
//	log_level                 DEFINE_LOG_LEVEL         warn
//	log_format                DEFINE_LOG_FORMAT        text
//
// Environment variables take precedence over the file.
package config
