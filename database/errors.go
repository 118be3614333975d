package database

import "fmt"

// InitError reports that the relational store could not be created,
// opened, or re-initialized.
type InitError struct {
	Target string
	Err    error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize store %s: %v", e.Target, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
