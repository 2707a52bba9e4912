package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/database"
)

// MigrateCommand applies, reverts or lists schema migrations.
type MigrateCommand struct {
	Action      string
	Steps       int
	DatabaseURL string

	Out io.Writer
}

func NewMigrateCommand(cfg config.Database) *MigrateCommand {
	return &MigrateCommand{
		DatabaseURL: cfg.URL,
		Out:         os.Stdout,
	}
}

func (cmd *MigrateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)

	fs.IntVar(&cmd.Steps, "steps", 1, "Number of migrations to revert (down only)")
	fs.StringVar(&cmd.DatabaseURL, "db", cmd.DatabaseURL, "Database URL (defaults to DATABASE_URL)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s migrate <up|down|status> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Manage the database schema.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s migrate up\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s migrate down -steps 2\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s migrate status -db sqlite://./bookmarks.db\n", os.Args[0])
	}

	if len(args) == 0 {
		fs.Usage()
		return fmt.Errorf("action is required")
	}
	cmd.Action = args[0]
	switch cmd.Action {
	case "up", "down", "status":
	default:
		fs.Usage()
		return fmt.Errorf("unknown action: %s", cmd.Action)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if cmd.Action == "down" && cmd.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cmd.Steps)
	}
	return nil
}

func (cmd *MigrateCommand) Run() error {
	db, err := database.Open(config.Database{URL: cmd.DatabaseURL, LogLevel: "warn"})
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	runner := db.Migrator()

	switch cmd.Action {
	case "up":
		applied, err := runner.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		fmt.Fprintf(cmd.Out, "Applied %d migration(s)\n", applied)

	case "down":
		reverted, err := runner.Down(ctx, cmd.Steps)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		fmt.Fprintf(cmd.Out, "Reverted %d migration(s)\n", reverted)

	case "status":
		statuses, err := runner.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		w := tabwriter.NewWriter(cmd.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED AT")
		for _, st := range statuses {
			appliedAt := "pending"
			if st.Applied && st.AppliedAt != nil {
				appliedAt = st.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", st.Version, st.Name, appliedAt)
		}
		return w.Flush()
	}

	return nil
}
