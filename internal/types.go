package internal

import "time"

// HistoryEntry records one successful translation. Entries are immutable once
// created; LangCode refers to a catalog language for label display only.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	LangCode  string    `json:"lang"`
	CreatedAt time.Time `json:"created_at"`
}
