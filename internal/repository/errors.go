package repository

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrCorruptData   = errors.New("stored data is corrupt")
	ErrWriteFailed   = errors.New("write failed")
	ErrAlreadyExists = errors.New("entity already exists")
)
