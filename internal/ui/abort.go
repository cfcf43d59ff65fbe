package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted is returned when a prompt is dismissed with Esc, Ctrl+C or
// Ctrl+D, or its context is cancelled.
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort maps abort-like prompt errors to ErrUserAborted and returns
// any other error unchanged.
func NormalizeAbort(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return ErrUserAborted
	default:
		return err
	}
}

// IsAbort reports whether err is, or wraps, ErrUserAborted.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
