// Package ioutils provides file system utilities for define.
//
// This package contains functions for:
//   - Atomic file writing
//   - Directory creation
//   - Existence checks
package ioutils
