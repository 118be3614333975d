package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateFormat is the wire format for application dates, used identically
// in the flat file and in the relational store. Dates carry no time
// component; lexical order of formatted dates matches chronological order.
const DateFormat = "2006-01-02"

var validate = validator.New()

// Record is one application event: Quantity applications sent to Company
// on Date. After aggregation a Record instead stands for the most recent
// event per company (see the aggregate package). Records are values and
// are never mutated in place.
type Record struct {
	Company  string    `json:"company" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Quantity int       `json:"quantity" validate:"gt=0"`
}

// Validate reports whether the record satisfies the entity constraints:
// non-empty company, non-zero date, positive quantity.
func (r Record) Validate() error {
	return validate.Struct(r)
}

// FormatDate renders the record's date in the wire format.
func (r Record) FormatDate() string {
	return r.Date.Format(DateFormat)
}

// ParseDate parses a wire-format date. The time component is always
// midnight UTC so that equal dates compare equal.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s)", s, DateFormat)
	}
	return t, nil
}

// Today truncates now to a wire-format date.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
