// Package flatfile reads and writes the delimited-text representation of
// application records: one record per line, comma-delimited, no header,
// fields company,date,quantity with dates in models.DateFormat. The codec
// preserves order in both directions and never deduplicates or sorts;
// serialize(parse(text)) reproduces text up to field-spacing and
// trailing-newline normalization.
package flatfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"apptrack/models"
)

const fieldsPerRecord = 3

// Parse decodes an ordered sequence of records. Any malformed line
// (wrong field count, bad date, non-positive or non-integer quantity)
// aborts the parse with a *MalformedRecordError; nothing parsed so far
// is returned.
func Parse(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldsPerRecord
	cr.TrimLeadingSpace = true

	var records []models.Record
	for line := 1; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			reason := "unreadable line"
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
				reason = pe.Err.Error()
			}
			if errors.Is(err, csv.ErrFieldCount) {
				reason = fmt.Sprintf("expected %d fields", fieldsPerRecord)
			}
			return nil, &MalformedRecordError{Line: line, Reason: reason}
		}
		rec, err := parseFields(fields)
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Reason: err.Error()}
		}
		records = append(records, rec)
	}
}

func parseFields(fields []string) (models.Record, error) {
	company := strings.TrimSpace(fields[0])
	if company == "" {
		return models.Record{}, errors.New("empty company")
	}
	date, err := models.ParseDate(strings.TrimSpace(fields[1]))
	if err != nil {
		return models.Record{}, err
	}
	raw := strings.TrimSpace(fields[2])
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid quantity %q: not an integer", raw)
	}
	if quantity <= 0 {
		return models.Record{}, fmt.Errorf("invalid quantity %d: must be positive", quantity)
	}
	return models.Record{Company: company, Date: date, Quantity: quantity}, nil
}

// Serialize encodes records in file order, one line each.
func Serialize(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write(encodeFields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeFields(r models.Record) []string {
	return []string{r.Company, r.FormatDate(), strconv.Itoa(r.Quantity)}
}

// ReadFile parses the flat file at path.
func ReadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flat file: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WriteFile serializes records to path. Unless force is set, an existing
// file is left untouched and a *OverwriteError is returned for the
// caller to resolve.
func WriteFile(path string, records []models.Record, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return &OverwriteError{Path: path}
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create flat file: %w", err)
	}
	defer f.Close()

	if err := Serialize(f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Sync()
}

// Append adds a single record to the end of the flat file, creating the
// file if it does not exist yet.
func Append(path string, rec models.Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open flat file for append: %w", err)
	}
	defer f.Close()

	if err := Serialize(f, []models.Record{rec}); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}
