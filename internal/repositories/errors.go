package repositories

import "errors"

// Sentinel errors shared by all repositories. Callers map them onto
// HTTP statuses with errors.Is instead of matching message strings.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate value for unique column")
)
