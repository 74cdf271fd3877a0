package domain

import "errors"

var (
	ErrTechnologyNotFound = errors.New("technology not found")
	ErrQuadrantNotFound   = errors.New("quadrant not found")
	ErrRingNotFound       = errors.New("ring not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrLinkNotFound       = errors.New("technology-project link not found")
	ErrSnapshotNotFound   = errors.New("radar snapshot not found")
)
