package history

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/diary-logs/models"
	dbpkg "github.com/dtnitsch/diary-logs/pkg/db"
	"github.com/urfave/cli/v2"
)

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")

	database, err := dbpkg.Open(path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	records := []models.LogRecord{{Time: 90, Memo: "coding"}, {Time: 30, Memo: "lunch"}}
	if _, err := database.InsertSnapshot("monday.html", "h1", models.VariantList, true, records); err != nil {
		t.Fatalf("InsertSnapshot() failed: %v", err)
	}
	if _, err := database.InsertSnapshot("login.html", "h2", models.VariantUnknown, false, nil); err != nil {
		t.Fatalf("InsertSnapshot() failed: %v", err)
	}
	return path
}

func runHistory(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name:   "diary-logs",
		Writer: &out,
		Commands: []*cli.Command{
			{
				Name: "history",
				Subcommands: []*cli.Command{
					{Name: "list", Flags: ListFlags(), Action: ListAction},
					{Name: "show", Flags: Flags(), Action: ShowAction},
				},
			},
		},
	}
	err := app.Run(append([]string{"diary-logs", "history"}, args...))
	return out.String(), err
}

func TestListAction(t *testing.T) {
	path := seedDB(t)

	out, err := runHistory(t, "list", "--db", path)
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}

	first := strings.Index(out, "login.html")
	second := strings.Index(out, "monday.html")
	if first < 0 || second < 0 || first > second {
		t.Errorf("output not newest first:\n%s", out)
	}
	if !strings.Contains(out, "2h") {
		t.Errorf("output missing total duration:\n%s", out)
	}
	if !strings.Contains(out, "Total: 2 snapshots") {
		t.Errorf("output missing snapshot count:\n%s", out)
	}
}

func TestListAction_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	out, err := runHistory(t, "list", "--db", path)
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if !strings.Contains(out, "No snapshots found") {
		t.Errorf("output = %q, want no-snapshots message", out)
	}
}

func TestShowAction(t *testing.T) {
	path := seedDB(t)

	out, err := runHistory(t, "show", "--db", path, "1")
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}

	for _, want := range []string{"Snapshot 1", " 1. 1h 30m\t-\tcoding", " 2. 30m\t-\tlunch", "Total: 2h"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowAction_LatestNotFoundSnapshot(t *testing.T) {
	path := seedDB(t)

	out, err := runHistory(t, "show", "--db", path)
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(out, "login.html") || !strings.Contains(out, "No data for this date!") {
		t.Errorf("output = %q, want latest snapshot with no-data message", out)
	}
}

func TestShowAction_InvalidID(t *testing.T) {
	path := seedDB(t)

	if _, err := runHistory(t, "show", "--db", path, "abc"); err == nil {
		t.Error("history show error = nil, want error for invalid ID")
	}
	if _, err := runHistory(t, "show", "--db", path, "99"); err == nil {
		t.Error("history show error = nil, want error for missing snapshot")
	}
}
