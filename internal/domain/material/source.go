package material

import "time"

// Source is an uploaded material catalog kept as raw bytes. The resolved
// table is derived from Raw on demand and rebuilt wholesale; only the bytes
// persist.
type Source struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Raw         []byte    `json:"-"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// SourceInfo is a lightweight representation for listing.
type SourceInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
}
