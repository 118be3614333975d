// Package cli holds the command layer: explicit command methods over an
// App value instead of process-global state. The core packages stay
// free of prompting and path resolution; everything interactive ends
// here.
package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"apptrack/config"
)

// App carries the wiring every command needs. In/Out are injectable so
// tests can script the interactive session.
type App struct {
	Config config.Config
	Log    *zap.SugaredLogger
	In     io.Reader
	Out    io.Writer
	Now    func() time.Time
}

// Dispatch runs the admin command named by args. Unknown commands print
// the command list and are not an error.
func (a *App) Dispatch(args []string) error {
	switch args[0] {
	case "new":
		return a.New()
	case "clean":
		return a.Clean()
	case "seed":
		return a.Seed()
	case "export":
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		force := fs.Bool("force", false, "overwrite the flat file without asking")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return a.Export(*force)
	case "count":
		return a.Count()
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: search <company>")
		}
		return a.Search(args[1])
	case "serve":
		return a.Serve()
	case "help":
		a.Help()
		return nil
	default:
		fmt.Fprintln(a.Out, "Invalid command!")
		a.Help()
		return nil
	}
}

// Help prints the command list.
func (a *App) Help() {
	fmt.Fprint(a.Out, `Commands:
  new             initialize an empty flat file (refuses to clobber one)
  clean           aggregate the flat file in place, one row per company
  seed            aggregate the flat file into the sqlite store (destructive)
  export [-force] write the sqlite store back out as a flat file
  count           applications submitted today and in total
  search <name>   rows for an exact company name
  serve           read-only HTTP viewer over the sqlite store
  help            this list
Run with no arguments for the interactive quick-entry session.
`)
}
