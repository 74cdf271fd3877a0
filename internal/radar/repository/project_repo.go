package repository

import (
	"sort"
	"sync"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// ProjectRepository holds the project collection in memory.
type ProjectRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Project
	nextID int64
}

// NewProjectRepository creates an empty ProjectRepository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		items:  make(map[int64]domain.Project),
		nextID: 1,
	}
}

// Create assigns the next id and stores the project. Status is free text; no
// enumeration is enforced.
func (r *ProjectRepository) Create(in domain.CreateProjectInput) domain.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Project{
		ID:          r.nextID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Website:     in.Website,
		RepoURL:     in.RepoURL,
		ImageURL:    in.ImageURL,
	}
	r.nextID++
	r.items[p.ID] = p
	return p
}

// Get returns the project with the given id or domain.ErrProjectNotFound.
func (r *ProjectRepository) Get(id int64) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

// List returns all projects in ascending id order.
func (r *ProjectRepository) List() []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the provided fields onto the stored project.
func (r *ProjectRepository) Update(id int64, in domain.UpdateProjectInput) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	if in.Name.Set {
		p.Name = in.Name.Value
	}
	if in.Description.Set {
		p.Description = in.Description.Value
	}
	if in.Status.Set {
		p.Status = in.Status.Value
	}
	if in.Website.Set {
		p.Website = in.Website.Value
	}
	if in.RepoURL.Set {
		p.RepoURL = in.RepoURL.Value
	}
	if in.ImageURL.Set {
		p.ImageURL = in.ImageURL.Value
	}

	r.items[id] = p
	return &p, nil
}
