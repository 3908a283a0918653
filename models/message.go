package models

// MessageTypeFetchDiaryLogs asks the extractor for the records on the current page.
const MessageTypeFetchDiaryLogs = "fetchDiaryLogs"

// Message is a request sent to the extractor side. It carries no payload.
type Message struct {
	Type string `json:"type"`
}
