package entity

import "errors"

// ErrNotFound is returned by repositories when no document matches
var ErrNotFound = errors.New("not found")
