package activity

import "time"

// Type classifies an activity entry.
type Type string

const (
	TypeMaterialsLoaded  Type = "materials_loaded"
	TypeMaterialsDeleted Type = "materials_deleted"
	TypeProjectSaved     Type = "project_saved"
	TypeProjectDeleted   Type = "project_deleted"
)

// Entry is one audit-trail record.
type Entry struct {
	ID        int64     `json:"id"`
	Type      Type      `json:"type"`
	Subject   string    `json:"subject,omitempty"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
