package presenter

import (
	"strconv"
	"strings"

	"github.com/dtnitsch/diary-logs/models"
)

// FormatDuration renders minutes as "<H>h <M>m", dropping a zero segment.
// Zero minutes renders as an empty string.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if rest > 0 {
		parts = append(parts, strconv.Itoa(rest)+"m")
	}
	return strings.Join(parts, " ")
}

// FormatRecordLine renders one record as "<duration>\t-\t<memo>".
func FormatRecordLine(r models.LogRecord) string {
	return FormatDuration(r.Time) + "\t-\t" + r.Memo
}
