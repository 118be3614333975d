package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"apptrack/flatfile"
	"apptrack/models"
)

// Interactive runs the quick-entry session: show today's count, then
// loop on single-letter choices. Entries land in the flat file raw;
// aggregation only happens on clean/seed.
func (a *App) Interactive() error {
	scanner := bufio.NewScanner(a.In)
	for {
		if err := a.Count(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		fmt.Fprintln(a.Out, "Enter 'n' if new job, 's' if search, anything else if exit.")
		if !scanner.Scan() {
			return scanner.Err()
		}
		choice := strings.TrimSpace(scanner.Text())
		switch {
		case choice == "n":
			fmt.Fprintln(a.Out, "Enter company name followed by a comma, followed by quantity.")
			if !scanner.Scan() {
				return scanner.Err()
			}
			name, quantity, err := parseQuickEntry(scanner.Text())
			if err != nil {
				fmt.Fprintln(a.Out, err)
				continue
			}
			if err := a.addEntry(name, quantity); err != nil {
				return err
			}
		case choice == "s":
			fmt.Fprintln(a.Out, "Enter company name")
			if !scanner.Scan() {
				return scanner.Err()
			}
			if err := a.Search(strings.TrimSpace(scanner.Text())); err != nil {
				return err
			}
		case len([]rune(choice)) > 1:
			// More than one keystroke almost certainly meant a company
			// name, not a menu choice: rapid-fire entry, quantity 1.
			if err := a.addEntry(choice, 1); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// parseQuickEntry splits "company,quantity". A bare company name
// defaults the quantity to 1.
func parseQuickEntry(input string) (string, int, error) {
	name, raw, hasQuantity := strings.Cut(input, ",")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, errors.New("company name is required")
	}
	if !hasQuantity || strings.TrimSpace(raw) == "" {
		return name, 1, nil
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity %q", strings.TrimSpace(raw))
	}
	if quantity <= 0 {
		return "", 0, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	return name, quantity, nil
}

// addEntry records an application dated today. A same-day entry for the
// same company bumps that row's quantity instead of adding a new one,
// so today's count stays honest; older rows are never touched here.
func (a *App) addEntry(name string, quantity int) error {
	today := models.Today(a.Now())
	rec := models.Record{Company: name, Date: today, Quantity: quantity}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	records, err := flatfile.ReadFile(a.Config.FlatFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	for i, existing := range records {
		if existing.Company == name && existing.Date.Equal(today) {
			updated := append([]models.Record(nil), records...)
			updated[i].Quantity += quantity
			if err := flatfile.WriteFile(a.Config.FlatFile, updated, true); err != nil {
				return err
			}
			a.Log.Infow("entry merged", "company", name, "quantity", updated[i].Quantity)
			return nil
		}
	}

	if err := flatfile.Append(a.Config.FlatFile, rec); err != nil {
		return err
	}
	a.Log.Infow("entry added", "company", name, "quantity", quantity)
	return nil
}
