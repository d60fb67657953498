// Package postgres holds errors shared by the per-module repositories.
package postgres

import "github.com/pkg/errors"

var ErrNotFound = errors.New("row not found")
