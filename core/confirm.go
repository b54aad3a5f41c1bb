package core

import "errors"

type (
	// Confirmer gates irreversible actions behind an interactive prompt.
	// A false answer means the action must not issue any network call.
	Confirmer interface {
		Confirm(prompt string) bool
	}

	ConfirmerFunc func(prompt string) bool
)

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// ErrDeclined is returned when the user declines a confirmation prompt.
// It is not a failure; callers leave the screen untouched.
var ErrDeclined = errors.New("action declined")

// AlwaysConfirm is used where the surface has already obtained confirmation
// (the web app's dialogs run in the browser before the request is made).
var AlwaysConfirm = ConfirmerFunc(func(string) bool { return true })
