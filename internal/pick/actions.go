// Package pick runs the interactive diary log checklist.
package pick

import (
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dtnitsch/diary-logs/internal/common"
	"github.com/dtnitsch/diary-logs/pkg/messaging"
	"github.com/urfave/cli/v2"
)

// Flags returns the pick command flags.
func Flags() []cli.Flag {
	return common.SourceFlags()
}

// PickAction opens the checklist for a page or stored snapshot.
func PickAction(c *cli.Context) error {
	env, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer env.Close()

	// stderr logging would tear the terminal UI; failures show in the view.
	env.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

	src, err := env.Source(c)
	if err != nil {
		return err
	}

	model := NewModel(c.Context, messaging.NewClient(env.Router(src)), clipboard.WriteAll)
	p := tea.NewProgram(model, tea.WithContext(c.Context))
	_, err = p.Run()
	return err
}
