package domain

import "encoding/json"

// Quadrant represents a domain category on the radar (e.g. Tools, Platforms).
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Quadrant struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color"`
}

// Ring represents an adoption-maturity tier (Adopt, Trial, Assess, Hold).
// Creation order is the maturity order: index 0 is the innermost ring.
type Ring struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color"`
}

// Technology is a catalog entry classified by quadrant and ring.
// Quadrant and Ring are positional indices into the creation order of their
// collections, not validated foreign keys; an out-of-range value is stored
// as-is and the radar view degrades to the unclassified group.
type Technology struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Quadrant         int             `json:"quadrant"`
	Ring             int             `json:"ring"`
	Website          *string         `json:"website"`
	Tags             []string        `json:"tags"`
	CustomProperties json.RawMessage `json:"custom_properties"`
}

// Project is a piece of work that technologies can be linked to.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Website     *string `json:"website"`
	RepoURL     *string `json:"repo_url"`
	ImageURL    *string `json:"image_url"`
}

// TechnologyProject is a many-to-many association between a technology and a
// project. Duplicate (technology_id, project_id) pairs are permitted and the
// referenced ids are not checked for existence.
type TechnologyProject struct {
	ID           int64   `json:"id"`
	TechnologyID int64   `json:"technology_id"`
	ProjectID    int64   `json:"project_id"`
	Notes        *string `json:"notes"`
}
