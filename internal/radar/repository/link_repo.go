package repository

import (
	"sort"
	"sync"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// TechnologyProjectRepository holds the technology-project association
// collection in memory. It does not verify that the referenced technology or
// project ids exist, and duplicate pairs are allowed; referential integrity
// is a documented simplification of the contract, not an oversight.
type TechnologyProjectRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.TechnologyProject
	nextID int64
}

// NewTechnologyProjectRepository creates an empty TechnologyProjectRepository.
func NewTechnologyProjectRepository() *TechnologyProjectRepository {
	return &TechnologyProjectRepository{
		items:  make(map[int64]domain.TechnologyProject),
		nextID: 1,
	}
}

// Create assigns the next id and stores the link.
func (r *TechnologyProjectRepository) Create(in domain.CreateTechnologyProjectInput) domain.TechnologyProject {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := domain.TechnologyProject{
		ID:           r.nextID,
		TechnologyID: in.TechnologyID,
		ProjectID:    in.ProjectID,
		Notes:        in.Notes,
	}
	r.nextID++
	r.items[l.ID] = l
	return l
}

// Get returns the link with the given id or domain.ErrLinkNotFound.
func (r *TechnologyProjectRepository) Get(id int64) (*domain.TechnologyProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[id]
	if !ok {
		return nil, domain.ErrLinkNotFound
	}
	return &l, nil
}

// List returns all links in ascending id order.
func (r *TechnologyProjectRepository) List() []domain.TechnologyProject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TechnologyProject, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the provided fields onto the stored link.
func (r *TechnologyProjectRepository) Update(id int64, in domain.UpdateTechnologyProjectInput) (*domain.TechnologyProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[id]
	if !ok {
		return nil, domain.ErrLinkNotFound
	}

	if in.TechnologyID.Set {
		l.TechnologyID = in.TechnologyID.Value
	}
	if in.ProjectID.Set {
		l.ProjectID = in.ProjectID.Value
	}
	if in.Notes.Set {
		l.Notes = in.Notes.Value
	}

	r.items[id] = l
	return &l, nil
}
