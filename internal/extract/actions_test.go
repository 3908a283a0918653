package extract

import (
	"testing"

	"github.com/dtnitsch/diary-logs/models"
	"github.com/dtnitsch/diary-logs/pkg/messaging"
)

func TestFormatReply(t *testing.T) {
	loaded := messaging.Reply{
		Loaded:  true,
		Records: []models.LogRecord{{Time: 60, Memo: "A"}},
	}

	tests := []struct {
		name    string
		reply   messaging.Reply
		format  string
		want    string
		wantErr bool
	}{
		{"json null", messaging.Reply{}, "json", "null\n", false},
		{"yaml null", messaging.Reply{}, "yaml", "null\n", false},
		{"json records", loaded, "", "[\n  {\n    \"time\": 60,\n    \"memo\": \"A\"\n  }\n]\n", false},
		{"yaml records", loaded, "YAML", "- time: 60\n  memo: A\n", false},
		{"json empty", messaging.Reply{Loaded: true, Records: []models.LogRecord{}}, "json", "[]\n", false},
		{"unknown format", loaded, "csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatReply(tt.reply, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatReply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatReply() = %q, want %q", got, tt.want)
			}
		})
	}
}
