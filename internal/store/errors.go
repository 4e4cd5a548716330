package store

import (
	"errors"

	"github.com/capopt/platform/internal/database/common"
)

var (
	// ErrNotFound means a natural-key lookup matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrMissingPrerequisite means a row a module depends on does not exist.
	// It usually points at modules being run out of order and is never retried.
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrAmbiguousKey means a natural key matched more than one row.
	ErrAmbiguousKey = errors.New("natural key matched more than one row")

	ErrEmptyKey          = errors.New("natural key is empty")
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrConstraintViolation is the adapter-level constraint error, re-exported
	// so modules do not import the database packages.
	ErrConstraintViolation = common.ErrConstraintViolation
)
