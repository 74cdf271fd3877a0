package domain

import "encoding/json"

// Create inputs carry every settable field of an entity; ids are assigned by
// the repositories. Update inputs use Optional so a shallow merge can
// preserve fields the caller did not send.

type CreateQuadrantInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color"`
}

type UpdateQuadrantInput struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Color       Optional[*string] `json:"color"`
}

type CreateRingInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color"`
}

type UpdateRingInput struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Color       Optional[*string] `json:"color"`
}

type CreateTechnologyInput struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Quadrant         int             `json:"quadrant"`
	Ring             int             `json:"ring"`
	Website          *string         `json:"website"`
	Tags             []string        `json:"tags"`
	CustomProperties json.RawMessage `json:"custom_properties"`
}

type UpdateTechnologyInput struct {
	Name             Optional[string]          `json:"name"`
	Description      Optional[string]          `json:"description"`
	Quadrant         Optional[int]             `json:"quadrant"`
	Ring             Optional[int]             `json:"ring"`
	Website          Optional[*string]         `json:"website"`
	Tags             Optional[[]string]        `json:"tags"`
	CustomProperties Optional[json.RawMessage] `json:"custom_properties"`
}

type CreateProjectInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Website     *string `json:"website"`
	RepoURL     *string `json:"repo_url"`
	ImageURL    *string `json:"image_url"`
}

type UpdateProjectInput struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Status      Optional[string]  `json:"status"`
	Website     Optional[*string] `json:"website"`
	RepoURL     Optional[*string] `json:"repo_url"`
	ImageURL    Optional[*string] `json:"image_url"`
}

type CreateTechnologyProjectInput struct {
	TechnologyID int64   `json:"technology_id"`
	ProjectID    int64   `json:"project_id"`
	Notes        *string `json:"notes"`
}

type UpdateTechnologyProjectInput struct {
	TechnologyID Optional[int64]   `json:"technology_id"`
	ProjectID    Optional[int64]   `json:"project_id"`
	Notes        Optional[*string] `json:"notes"`
}
