package domain

import "errors"

var (
	ErrNotResolved   = errors.New("version state not resolved")
	ErrUnknownState  = errors.New("unknown resolution state")
	ErrUnknownPolicy = errors.New("unknown comparison policy")
)
