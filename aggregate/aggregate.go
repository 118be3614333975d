// Package aggregate collapses raw record sequences into one record per
// company. It is pure: no I/O, no mutation of its input.
package aggregate

import "apptrack/models"

// Aggregate returns one record per distinct company. The representative
// record for a company is the one with the most recent date; on equal
// dates the first in input order wins. The representative keeps its own
// quantity — quantities are NOT summed across the group, so the result
// reflects one original application event per company, not a cumulative
// count. Same-day submissions that lose the tie-break are dropped; that
// information loss is the documented contract of this policy.
//
// Output order is the first appearance of each company in the input,
// which makes Aggregate idempotent: aggregating an already-aggregated
// sequence returns it unchanged.
func Aggregate(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	index := make(map[string]int, len(records))
	for _, r := range records {
		i, seen := index[r.Company]
		if !seen {
			index[r.Company] = len(out)
			out = append(out, r)
			continue
		}
		if r.Date.After(out[i].Date) {
			out[i] = r
		}
	}
	return out
}

// TotalQuantity sums quantities across a sequence. It belongs to the
// counting view of the data, not to aggregation, which never sums.
func TotalQuantity(records []models.Record) int {
	total := 0
	for _, r := range records {
		total += r.Quantity
	}
	return total
}
