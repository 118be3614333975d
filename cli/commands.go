package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"apptrack/aggregate"
	"apptrack/database"
	"apptrack/flatfile"
	"apptrack/handlers"
	"apptrack/models"
	"apptrack/store"
)

// New initializes an empty flat file. An already-initialized file is
// reported, never clobbered; init has no force path.
func (a *App) New() error {
	err := flatfile.WriteFile(a.Config.FlatFile, nil, false)
	var overwrite *flatfile.OverwriteError
	if errors.As(err, &overwrite) {
		fmt.Fprintf(a.Out, "Initialization failed, %s is already initialized.\n", a.Config.FlatFile)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Initialized %s.\n", a.Config.FlatFile)
	return nil
}

// Clean aggregates the flat file in place: one row per company, most
// recent date wins. Quantities are not summed; see aggregate.Aggregate.
func (a *App) Clean() error {
	records, err := flatfile.ReadFile(a.Config.FlatFile)
	if err != nil {
		return err
	}
	aggregated := aggregate.Aggregate(records)
	if err := flatfile.WriteFile(a.Config.FlatFile, aggregated, true); err != nil {
		return err
	}
	a.Log.Infow("flat file aggregated",
		"path", a.Config.FlatFile, "rows_in", len(records), "rows_out", len(aggregated))
	return nil
}

// Seed aggregates the flat file into the sqlite store, replacing its
// prior contents.
func (a *App) Seed() error {
	records, err := flatfile.ReadFile(a.Config.FlatFile)
	if err != nil {
		return err
	}

	db, err := database.Open(a.Config.DBPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := store.Seed(db, records); err != nil {
		return err
	}
	a.Log.Infow("store seeded", "path", a.Config.DBPath, "rows_in", len(records))
	return nil
}

// Export writes the sqlite store back out as a flat file. Without
// force, an existing file triggers a confirmation prompt; the core
// surfaces the overwrite error and the command resolves it.
func (a *App) Export(force bool) error {
	db, err := database.Open(a.Config.DBPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	records, err := store.Export(db)
	if err != nil {
		return err
	}

	err = flatfile.WriteFile(a.Config.FlatFile, records, force)
	var overwrite *flatfile.OverwriteError
	if errors.As(err, &overwrite) {
		if !a.confirm(fmt.Sprintf("%s exists, overwrite? [y/N] ", overwrite.Path)) {
			fmt.Fprintln(a.Out, "Export aborted.")
			return nil
		}
		err = flatfile.WriteFile(a.Config.FlatFile, records, true)
	}
	if err != nil {
		return err
	}
	a.Log.Infow("store exported", "path", a.Config.FlatFile, "rows", len(records))
	return nil
}

// Count reports applications submitted today and in total, from the raw
// flat file. Counting sums quantities; aggregation never does.
func (a *App) Count() error {
	records, err := flatfile.ReadFile(a.Config.FlatFile)
	if err != nil {
		return err
	}

	today := models.Today(a.Now())
	todayTotal := 0
	for _, r := range records {
		if r.Date.Equal(today) {
			todayTotal += r.Quantity
			fmt.Fprintf(a.Out, "  %s: %d\n", r.Company, r.Quantity)
		}
	}
	fmt.Fprintf(a.Out, "Applications today = %d\n", todayTotal)
	fmt.Fprintf(a.Out, "So far, you have a total of %d applications!\n", aggregate.TotalQuantity(records))
	return nil
}

// Search prints the raw rows for an exact company name.
func (a *App) Search(name string) error {
	records, err := flatfile.ReadFile(a.Config.FlatFile)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, "This is what came up:")
	found := false
	for _, r := range records {
		if r.Company == name {
			fmt.Fprintf(a.Out, "  %s  %s  %d\n", r.Company, r.FormatDate(), r.Quantity)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(a.Out, "  (nothing)")
	}
	return nil
}

// Serve starts the read-only HTTP viewer over the sqlite store.
func (a *App) Serve() error {
	db, err := database.Open(a.Config.DBPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	handlers.New(db, a.Log).Register(r)

	a.Log.Infow("starting viewer", "addr", a.Config.Addr, "db", a.Config.DBPath)
	return r.Run(a.Config.Addr)
}

func (a *App) confirm(prompt string) bool {
	fmt.Fprint(a.Out, prompt)
	scanner := bufio.NewScanner(a.In)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
