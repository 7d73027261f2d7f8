package domain

import "errors"

var (
	ErrEngineerNotFound    = errors.New("engineer not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
)
