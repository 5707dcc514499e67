package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already in use")
	ErrStoryNotFound    = errors.New("story not found")
	ErrBlockNotFound    = errors.New("block not found")
	ErrBlockNotEditable = errors.New("block type is not editable")
)
