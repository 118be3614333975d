// Package store is the relational bridge: it maps aggregated record
// sequences onto a fixed three-column table and back. Seeding is
// destructive by contract — it replaces the table's prior contents, it
// never merges. The store assumes a single reader/writer at a time;
// concurrent multi-process access is out of scope and not guarded
// against.
package store

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"apptrack/aggregate"
	"apptrack/database"
	"apptrack/models"
)

// row is the persisted shape of a record. The primary key on company
// enforces key uniqueness, which holds because seeding always
// aggregates first.
type row struct {
	Company  string `gorm:"column:company;primaryKey"`
	Date     string `gorm:"column:date"`
	Quantity int    `gorm:"column:quantity"`
}

func (row) TableName() string { return "records" }

var schemaColumns = []string{"company", "date", "quantity"}

// Seed aggregates raw and writes the result into the store, replacing
// any prior contents. The table is dropped and re-created, so an
// incompatible leftover schema is overwritten rather than merged into;
// a failure to rebuild it surfaces as *database.InitError.
func Seed(db *gorm.DB, raw []models.Record) error {
	records := aggregate.Aggregate(raw)

	m := db.Migrator()
	if m.HasTable(&row{}) {
		if err := m.DropTable(&row{}); err != nil {
			return &database.InitError{Target: row{}.TableName(), Err: err}
		}
	}
	if err := m.CreateTable(&row{}); err != nil {
		return &database.InitError{Target: row{}.TableName(), Err: err}
	}

	if len(records) == 0 {
		return nil
	}
	rows := make([]row, 0, len(records))
	for _, r := range records {
		rows = append(rows, row{Company: r.Company, Date: r.FormatDate(), Quantity: r.Quantity})
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed records: %w", err)
	}
	return nil
}

// Export reads all rows into a record sequence, ordered by company then
// date. The order is an implementation detail but stable across calls.
// A store whose columns do not match the fixed schema is rejected with
// *SchemaMismatchError.
func Export(db *gorm.DB) ([]models.Record, error) {
	if err := verifySchema(db); err != nil {
		return nil, err
	}

	var rows []row
	if err := db.Order("company, date").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	for _, r := range rows {
		date, err := models.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("stored record for %q: %w", r.Company, err)
		}
		records = append(records, models.Record{Company: r.Company, Date: date, Quantity: r.Quantity})
	}
	return records, nil
}

func verifySchema(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&row{}) {
		return &SchemaMismatchError{Table: row{}.TableName(), Want: schemaColumns}
	}

	types, err := m.ColumnTypes(&row{})
	if err != nil {
		return fmt.Errorf("inspect schema: %w", err)
	}
	got := make([]string, 0, len(types))
	for _, t := range types {
		got = append(got, t.Name())
	}
	if !sameColumns(got, schemaColumns) {
		return &SchemaMismatchError{Table: row{}.TableName(), Want: schemaColumns, Got: got}
	}
	return nil
}

func sameColumns(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}
