package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// TechnologyRepository holds the technology collection in memory. Ids are
// assigned by a monotonic counter starting at 1 and are never reused. The
// HTTP boundary serves requests concurrently, so access is guarded by a
// read-write lock even though individual operations are synchronous.
type TechnologyRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Technology
	nextID int64
}

// NewTechnologyRepository creates an empty TechnologyRepository.
func NewTechnologyRepository() *TechnologyRepository {
	return &TechnologyRepository{
		items:  make(map[int64]domain.Technology),
		nextID: 1,
	}
}

// Create assigns the next id, fills defaults for unset optional fields and
// stores the technology. It cannot fail; the quadrant/ring indices are stored
// as-is without checking that the referenced entries exist.
func (r *TechnologyRepository) Create(in domain.CreateTechnologyInput) domain.Technology {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := domain.Technology{
		ID:               r.nextID,
		Name:             in.Name,
		Description:      in.Description,
		Quadrant:         in.Quadrant,
		Ring:             in.Ring,
		Website:          in.Website,
		Tags:             in.Tags,
		CustomProperties: in.CustomProperties,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	r.nextID++
	r.items[t.ID] = t
	return t
}

// Get returns the technology with the given id or domain.ErrTechnologyNotFound.
func (r *TechnologyRepository) Get(id int64) (*domain.Technology, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrTechnologyNotFound
	}
	return &t, nil
}

// List returns all technologies in ascending id order (insertion order).
func (r *TechnologyRepository) List() []domain.Technology {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Technology, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the provided fields onto the stored technology.
// Fields present in the input overwrite, including explicit nulls; absent
// fields are preserved. Returns domain.ErrTechnologyNotFound for unknown ids.
func (r *TechnologyRepository) Update(id int64, in domain.UpdateTechnologyInput) (*domain.Technology, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrTechnologyNotFound
	}

	if in.Name.Set {
		t.Name = in.Name.Value
	}
	if in.Description.Set {
		t.Description = in.Description.Value
	}
	if in.Quadrant.Set {
		t.Quadrant = in.Quadrant.Value
	}
	if in.Ring.Set {
		t.Ring = in.Ring.Value
	}
	if in.Website.Set {
		t.Website = in.Website.Value
	}
	if in.Tags.Set {
		t.Tags = in.Tags.Value
		if t.Tags == nil {
			t.Tags = []string{}
		}
	}
	if in.CustomProperties.Set {
		t.CustomProperties = in.CustomProperties.Value
	}

	r.items[id] = t
	return &t, nil
}

// Search returns the technologies whose name, description or any tag contains
// the query, case-insensitively. An empty or whitespace-only query returns
// the full list in List order.
func (r *TechnologyRepository) Search(query string) []domain.Technology {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List()
	}

	all := r.List()
	out := make([]domain.Technology, 0, len(all))
	for _, t := range all {
		if technologyMatches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func technologyMatches(t domain.Technology, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
