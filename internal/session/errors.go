package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownItem     = errors.New("catalog item not found")
	ErrItemUnavailable = errors.New("item is not available for ordering")
)
