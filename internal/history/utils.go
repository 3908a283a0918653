package history

import (
	"fmt"

	dbpkg "github.com/dtnitsch/diary-logs/pkg/db"
	"github.com/urfave/cli/v2"
)

// GetSnapshotIDOrLatest returns the snapshot ID from args, or the latest snapshot if not provided
func GetSnapshotIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		snapshots, err := database.ListSnapshots(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest snapshot: %w", err)
		}
		if len(snapshots) == 0 {
			return 0, fmt.Errorf("no snapshots found. Run 'diary-logs extract --record <source>' first")
		}
		return snapshots[0].SnapshotID, nil
	}

	var snapshotID int64
	_, err := fmt.Sscanf(c.Args().First(), "%d", &snapshotID)
	if err != nil || snapshotID <= 0 {
		return 0, fmt.Errorf("invalid snapshot ID: %s", c.Args().First())
	}
	return snapshotID, nil
}
