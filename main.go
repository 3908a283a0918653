package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/diary-logs/internal/export"
	"github.com/dtnitsch/diary-logs/internal/extract"
	"github.com/dtnitsch/diary-logs/internal/history"
	"github.com/dtnitsch/diary-logs/internal/pick"
	"github.com/dtnitsch/diary-logs/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "diary-logs",
		Usage: "Extract time-log records from a diary page and export a filtered summary",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Print the diary logs of a page as JSON or YAML",
				ArgsUsage: "<file|url|->",
				Flags:     extract.Flags(),
				Action:    extract.ExtractAction,
			},
			{
				Name:      "export",
				Usage:     "Render the checklist and print the export text",
				ArgsUsage: "<file|url|->",
				Flags:     export.Flags(),
				Action:    export.ExportAction,
			},
			{
				Name:      "pick",
				Usage:     "Interactively choose which records to export",
				ArgsUsage: "<file|url|->",
				Flags:     pick.Flags(),
				Action:    pick.PickAction,
			},
			{
				Name:  "history",
				Usage: "Browse recorded snapshots",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List snapshots, newest first",
						Flags:  history.ListFlags(),
						Action: history.ListAction,
					},
					{
						Name:      "show",
						Usage:     "Show the records of a snapshot (latest if no ID)",
						ArgsUsage: "[id]",
						Flags:     history.Flags(),
						Action:    history.ShowAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print the quick-start guide",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
