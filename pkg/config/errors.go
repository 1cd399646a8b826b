package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported config format")
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrAmbiguousBinding   = errors.New("binding sets both action and lua")
	ErrMissingAction      = errors.New("binding sets none of map, action, lua")
)

// ShapeError reports a malformed section of a configuration file.
type ShapeError struct {
	Section string
	Err     error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
