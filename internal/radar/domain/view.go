package domain

import "time"

// RadarView is the render-ready structure the visualization frontend consumes:
// quadrants and rings in creation order plus technologies grouped per
// (quadrant, ring) cell. Technologies with out-of-range indices land in
// Unclassified instead of failing the build.
type RadarView struct {
	Quadrants    []Quadrant   `json:"quadrants"`
	Rings        []Ring       `json:"rings"`
	Cells        []RadarCell  `json:"cells"`
	Unclassified []Technology `json:"unclassified"`
	GeneratedAt  time.Time    `json:"generated_at"`
}

// RadarCell groups the technologies of one quadrant/ring intersection.
type RadarCell struct {
	Quadrant     int          `json:"quadrant"`
	Ring         int          `json:"ring"`
	Technologies []Technology `json:"technologies"`
}
