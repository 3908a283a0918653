// Package models defines data structures shared by the extractor, the presenter and the CLI.
package models

// LogRecord is one normalized diary entry: a label and the minutes logged against it.
type LogRecord struct {
	Time int    `json:"time" yaml:"time"` // minutes
	Memo string `json:"memo" yaml:"memo"`
}
