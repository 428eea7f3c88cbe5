package project

import "time"

// SavedProject is a persisted layer-stack configuration. Document holds the
// serialized project document; the assembly is re-derived from it on load.
type SavedProject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is a lightweight representation for listing.
type Summary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LayerCount int       `json:"layer_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
