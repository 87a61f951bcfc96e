// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("name is required")
	ErrNotFound           = errors.New("habit not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
