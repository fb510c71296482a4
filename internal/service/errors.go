package service

import "errors"

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrLinkExpired  = errors.New("link expired")
	ErrLinkDisabled = errors.New("link disabled")
)
