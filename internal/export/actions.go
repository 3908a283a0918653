package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dtnitsch/diary-logs/internal/common"
	"github.com/dtnitsch/diary-logs/pkg/messaging"
	"github.com/dtnitsch/diary-logs/pkg/presenter"
	"github.com/urfave/cli/v2"
)

// Flags returns the export command flags.
func Flags() []cli.Flag {
	return append(common.SourceFlags(),
		&cli.StringFlag{Name: "exclude", Usage: "comma-separated row numbers to leave out (1-based)"},
		&cli.BoolFlag{Name: "copy", Usage: "copy the export to the clipboard instead of printing it"},
	)
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// ExportAction renders the checklist to stderr and prints the export text,
// or copies it with --copy.
func ExportAction(c *cli.Context) error {
	excluded, err := ParseRowNumbers(c.String("exclude"))
	if err != nil {
		return err
	}

	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	src, err := env.Source(c)
	if err != nil {
		return err
	}

	client := messaging.NewClient(env.Router(src))
	reply := <-client.FetchDiaryLogs(c.Context)
	if reply.Err != nil {
		env.Logger.Error("No diary logs received", "error", reply.Err)
	}

	view := Build(reply, excluded)
	rendering := view.Render()
	if !c.Bool("quiet") {
		fmt.Fprint(c.App.ErrWriter, rendering.String())
	}

	text := view.ExportText()
	if c.Bool("copy") {
		if !view.Loaded() {
			return fmt.Errorf("nothing to copy: %s", presenter.NoDataMessage)
		}
		if err := writeClipboard(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		env.Logger.Info("Copied export to clipboard", "bytes", len(text))
		return nil
	}

	if text != "" {
		fmt.Fprintln(c.App.Writer, text)
	}
	return nil
}

// Build loads reply into a fresh view and toggles off the given indices.
func Build(reply messaging.Reply, excluded []int) *presenter.View {
	view := presenter.NewView()
	if reply.Loaded {
		view.SetData(reply.Records)
	} else {
		view.SetData(nil)
	}
	for _, i := range excluded {
		view.Toggle(i)
	}
	return view
}

// ParseRowNumbers turns a comma-separated list of 1-based row numbers into
// 0-based indices. Repeated numbers are collapsed.
func ParseRowNumbers(s string) ([]int, error) {
	var indices []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid row number: %s", part)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		indices = append(indices, n-1)
	}
	return indices, nil
}
