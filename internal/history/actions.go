// Package history lists and shows recorded extraction snapshots.
package history

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/diary-logs/internal/common"
	dbpkg "github.com/dtnitsch/diary-logs/pkg/db"
	"github.com/dtnitsch/diary-logs/pkg/presenter"
	"github.com/urfave/cli/v2"
)

// Flags returns the flags shared by the history subcommands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "YAML config file"},
		&cli.StringFlag{Name: "db", Usage: "snapshot history database path"},
	}
}

// ListFlags returns the history list flags.
func ListFlags() []cli.Flag {
	return append(Flags(),
		&cli.IntFlag{Name: "limit", Value: 20, Usage: "number of snapshots to show"},
	)
}

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// ListAction prints recorded snapshots, newest first.
func ListAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	snapshots, err := database.ListSnapshots(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	w := c.App.Writer
	if len(snapshots) == 0 {
		fmt.Fprintln(w, "No snapshots found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-8s %-6s %-8s %-10s %s\n",
		"ID", "Created", "Variant", "Found", "Records", "Total", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, s := range snapshots {
		fmt.Fprintf(w, "%-6d %-20s %-8s %-6t %-8d %-10s %s\n",
			s.SnapshotID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Variant,
			s.Found,
			s.RecordCount,
			presenter.FormatDuration(s.TotalMinutes),
			s.Source,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d snapshots\n", len(snapshots))
	fmt.Fprintf(w, "\nTip: Use 'diary-logs history show <id>' to see the records\n")
	return nil
}

// ShowAction prints one snapshot and its records.
func ShowAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	snapshotID, err := GetSnapshotIDOrLatest(c, database)
	if err != nil {
		return err
	}

	s, err := database.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}
	records, found, err := database.GetSnapshotRecords(snapshotID)
	if err != nil {
		return fmt.Errorf("failed to get snapshot records: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Snapshot %d\n", s.SnapshotID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Created:  %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Source:   %s\n", s.Source)
	fmt.Fprintf(w, "Variant:  %s\n", s.Variant)
	fmt.Fprintf(w, "Hash:     %s\n", s.ContentHash)

	if !found {
		fmt.Fprintf(w, "\n%s\n", presenter.NoDataMessage)
		return nil
	}

	fmt.Fprintf(w, "\nRecords (%d):\n", len(records))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, r := range records {
		fmt.Fprintf(w, "%2d. %s\n", i+1, presenter.FormatRecordLine(r))
	}
	fmt.Fprintf(w, "\nTotal: %s\n", presenter.FormatDuration(s.TotalMinutes))
	fmt.Fprintf(w, "\nTip: Use 'diary-logs export --snapshot %d' to export it\n", snapshotID)
	return nil
}
