// Package main hosts the define CLI entrypoint.
//
// The Cobra root command hands the raw arguments to cli.Parse, loads the
// config, runs the lookup, prints the result and plays the audio clip if one
// was requested. Exit codes: 0 on success or help, 1 on a usage error or
// failed lookup, 2 when the config cannot be loaded.
package main
