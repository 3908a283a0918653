package common

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
)

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SnapshotHash identifies one extraction: the page body plus the
// extractor settings that produced the records.
func SnapshotHash(body []byte, settings string) string {
	h := sha256.New()
	h.Write(body)
	h.Write([]byte{0})
	h.Write([]byte(settings))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// SanitizeSource cleans up a page source argument: surrounding whitespace,
// quotes, markdown link syntax and trailing punctuation from copy-paste.
// File paths are only trimmed and unquoted.
func SanitizeSource(raw string) string {
	cleaned := strings.TrimSpace(raw)

	// "[diary](https://example.com/diary)" -> "https://example.com/diary"
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, q := range []string{`"`, `'`} {
		if len(cleaned) >= 2 && strings.HasPrefix(cleaned, q) && strings.HasSuffix(cleaned, q) {
			cleaned = cleaned[1 : len(cleaned)-1]
		}
	}

	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		return strings.TrimSpace(cleaned)
	}

	// Example: "<https://example.com/diary>," -> "https://example.com/diary"
	for _, char := range []string{",", ".", ")", "}", "]", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	return strings.TrimSpace(cleaned)
}
