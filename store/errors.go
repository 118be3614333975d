package store

import (
	"fmt"
	"strings"
)

// SchemaMismatchError reports that the relational store does not carry
// the fixed three-column schema the bridge expects.
type SchemaMismatchError struct {
	Table string
	Want  []string
	Got   []string
}

func (e *SchemaMismatchError) Error() string {
	if len(e.Got) == 0 {
		return fmt.Sprintf("table %s not found (want columns %s)", e.Table, strings.Join(e.Want, ", "))
	}
	return fmt.Sprintf("table %s has columns (%s), want (%s)",
		e.Table, strings.Join(e.Got, ", "), strings.Join(e.Want, ", "))
}
