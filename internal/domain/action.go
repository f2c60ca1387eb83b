package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned by ParseAction for anything but like/unlike.
var ErrInvalidAction = errors.New("invalid action")

// Action is a like-toggle operation.
type Action string

const (
	ActionLike   Action = "like"
	ActionUnlike Action = "unlike"
)

// ParseAction accepts only the exact literals "like" and "unlike".
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionLike, ActionUnlike:
		return Action(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, raw)
	}
}
