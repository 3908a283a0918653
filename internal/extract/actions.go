package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/diary-logs/internal/common"
	"github.com/dtnitsch/diary-logs/pkg/messaging"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Flags returns the extract command flags.
func Flags() []cli.Flag {
	return append(common.SourceFlags(),
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output format: json or yaml"},
	)
}

// ExtractAction prints the fetchDiaryLogs response for a page as JSON or YAML.
func ExtractAction(c *cli.Context) error {
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
		return reply.Err
	}

	out, err := FormatReply(reply, c.String("format"))
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, out)
	return nil
}

// FormatReply renders a reply as "json" (default) or "yaml".
// A reply without data renders as null.
func FormatReply(reply messaging.Reply, format string) (string, error) {
	switch strings.ToLower(format) {
	case "yaml":
		if !reply.Loaded {
			return "null\n", nil
		}
		data, err := yaml.Marshal(reply.Records)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(data), nil
	case "", "json":
		if !reply.Loaded {
			return "null\n", nil
		}
		data, err := json.MarshalIndent(reply.Records, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q, want json or yaml", format)
	}
}
