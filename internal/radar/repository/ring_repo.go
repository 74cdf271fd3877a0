package repository

import (
	"sort"
	"sync"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// RingRepository holds the ring collection in memory. Creation order is the
// maturity order: the first ring created is the innermost.
type RingRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Ring
	nextID int64
}

// NewRingRepository creates an empty RingRepository.
func NewRingRepository() *RingRepository {
	return &RingRepository{
		items:  make(map[int64]domain.Ring),
		nextID: 1,
	}
}

// Create assigns the next id and stores the ring.
func (r *RingRepository) Create(in domain.CreateRingInput) domain.Ring {
	r.mu.Lock()
	defer r.mu.Unlock()

	ring := domain.Ring{
		ID:          r.nextID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
	}
	r.nextID++
	r.items[ring.ID] = ring
	return ring
}

// Get returns the ring with the given id or domain.ErrRingNotFound.
func (r *RingRepository) Get(id int64) (*domain.Ring, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ring, ok := r.items[id]
	if !ok {
		return nil, domain.ErrRingNotFound
	}
	return &ring, nil
}

// List returns all rings in ascending id order.
func (r *RingRepository) List() []domain.Ring {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Ring, 0, len(r.items))
	for _, ring := range r.items {
		out = append(out, ring)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the provided fields onto the stored ring.
func (r *RingRepository) Update(id int64, in domain.UpdateRingInput) (*domain.Ring, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ring, ok := r.items[id]
	if !ok {
		return nil, domain.ErrRingNotFound
	}

	if in.Name.Set {
		ring.Name = in.Name.Value
	}
	if in.Description.Set {
		ring.Description = in.Description.Value
	}
	if in.Color.Set {
		ring.Color = in.Color.Value
	}

	r.items[id] = ring
	return &ring, nil
}
