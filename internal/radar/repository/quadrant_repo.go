package repository

import (
	"sort"
	"sync"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// QuadrantRepository holds the quadrant collection in memory. Creation order
// doubles as the positional index technologies reference.
type QuadrantRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Quadrant
	nextID int64
}

// NewQuadrantRepository creates an empty QuadrantRepository.
func NewQuadrantRepository() *QuadrantRepository {
	return &QuadrantRepository{
		items:  make(map[int64]domain.Quadrant),
		nextID: 1,
	}
}

// Create assigns the next id and stores the quadrant.
func (r *QuadrantRepository) Create(in domain.CreateQuadrantInput) domain.Quadrant {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := domain.Quadrant{
		ID:          r.nextID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
	}
	r.nextID++
	r.items[q.ID] = q
	return q
}

// Get returns the quadrant with the given id or domain.ErrQuadrantNotFound.
func (r *QuadrantRepository) Get(id int64) (*domain.Quadrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.items[id]
	if !ok {
		return nil, domain.ErrQuadrantNotFound
	}
	return &q, nil
}

// List returns all quadrants in ascending id order.
func (r *QuadrantRepository) List() []domain.Quadrant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Quadrant, 0, len(r.items))
	for _, q := range r.items {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the provided fields onto the stored quadrant.
func (r *QuadrantRepository) Update(id int64, in domain.UpdateQuadrantInput) (*domain.Quadrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.items[id]
	if !ok {
		return nil, domain.ErrQuadrantNotFound
	}

	if in.Name.Set {
		q.Name = in.Name.Value
	}
	if in.Description.Set {
		q.Description = in.Description.Value
	}
	if in.Color.Set {
		q.Color = in.Color.Value
	}

	r.items[id] = q
	return &q, nil
}
