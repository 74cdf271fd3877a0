package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/radar-hub/techradar-backend/internal/radar/cache"
	"github.com/radar-hub/techradar-backend/internal/radar/domain"
	"github.com/radar-hub/techradar-backend/internal/radar/repository"
)

// RadarService is the single entry point into the radar catalog: it wraps the
// per-entity repositories, performs technology search, assembles the radar
// view and keeps the optional Redis snapshot in step with mutations.
type RadarService struct {
	technologies *repository.TechnologyRepository
	quadrants    *repository.QuadrantRepository
	rings        *repository.RingRepository
	projects     *repository.ProjectRepository
	links        *repository.TechnologyProjectRepository
	snapshots    *cache.SnapshotCache // nil when the cache is disabled
}

// Deps bundles the collaborators of a RadarService. Snapshots may be nil.
type Deps struct {
	Technologies *repository.TechnologyRepository
	Quadrants    *repository.QuadrantRepository
	Rings        *repository.RingRepository
	Projects     *repository.ProjectRepository
	Links        *repository.TechnologyProjectRepository
	Snapshots    *cache.SnapshotCache
}

// NewRadarService creates a new radar service.
func NewRadarService(d Deps) *RadarService {
	return &RadarService{
		technologies: d.Technologies,
		quadrants:    d.Quadrants,
		rings:        d.Rings,
		projects:     d.Projects,
		links:        d.Links,
		snapshots:    d.Snapshots,
	}
}

// ---- technologies ----

// CreateTechnology stores a new technology and invalidates the radar snapshot.
func (s *RadarService) CreateTechnology(ctx context.Context, in domain.CreateTechnologyInput) domain.Technology {
	t := s.technologies.Create(in)
	s.invalidateSnapshot(ctx)
	return t
}

// GetTechnology returns a technology by id.
func (s *RadarService) GetTechnology(id int64) (*domain.Technology, error) {
	return s.technologies.Get(id)
}

// ListTechnologies returns all technologies in insertion order.
func (s *RadarService) ListTechnologies() []domain.Technology {
	return s.technologies.List()
}

// SearchTechnologies matches the query against name, description and tags.
func (s *RadarService) SearchTechnologies(query string) []domain.Technology {
	return s.technologies.Search(query)
}

// UpdateTechnology merges the partial input onto an existing technology and
// invalidates the radar snapshot on success.
func (s *RadarService) UpdateTechnology(ctx context.Context, id int64, in domain.UpdateTechnologyInput) (*domain.Technology, error) {
	t, err := s.technologies.Update(id, in)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return t, nil
}

// ---- quadrants ----

func (s *RadarService) CreateQuadrant(ctx context.Context, in domain.CreateQuadrantInput) domain.Quadrant {
	q := s.quadrants.Create(in)
	s.invalidateSnapshot(ctx)
	return q
}

func (s *RadarService) GetQuadrant(id int64) (*domain.Quadrant, error) {
	return s.quadrants.Get(id)
}

func (s *RadarService) ListQuadrants() []domain.Quadrant {
	return s.quadrants.List()
}

func (s *RadarService) UpdateQuadrant(ctx context.Context, id int64, in domain.UpdateQuadrantInput) (*domain.Quadrant, error) {
	q, err := s.quadrants.Update(id, in)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return q, nil
}

// ---- rings ----

func (s *RadarService) CreateRing(ctx context.Context, in domain.CreateRingInput) domain.Ring {
	ring := s.rings.Create(in)
	s.invalidateSnapshot(ctx)
	return ring
}

func (s *RadarService) GetRing(id int64) (*domain.Ring, error) {
	return s.rings.Get(id)
}

func (s *RadarService) ListRings() []domain.Ring {
	return s.rings.List()
}

func (s *RadarService) UpdateRing(ctx context.Context, id int64, in domain.UpdateRingInput) (*domain.Ring, error) {
	ring, err := s.rings.Update(id, in)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return ring, nil
}

// ---- projects ----

// Projects do not appear on the radar chart, so their mutations leave the
// snapshot alone.

func (s *RadarService) CreateProject(in domain.CreateProjectInput) domain.Project {
	return s.projects.Create(in)
}

func (s *RadarService) GetProject(id int64) (*domain.Project, error) {
	return s.projects.Get(id)
}

func (s *RadarService) ListProjects() []domain.Project {
	return s.projects.List()
}

func (s *RadarService) UpdateProject(id int64, in domain.UpdateProjectInput) (*domain.Project, error) {
	return s.projects.Update(id, in)
}

// ---- technology-project links ----

// LinkTechnologyToProject stores a new association. The referenced ids are
// not checked for existence and duplicate pairs are allowed.
func (s *RadarService) LinkTechnologyToProject(in domain.CreateTechnologyProjectInput) domain.TechnologyProject {
	return s.links.Create(in)
}

func (s *RadarService) GetLink(id int64) (*domain.TechnologyProject, error) {
	return s.links.Get(id)
}

func (s *RadarService) ListLinks() []domain.TechnologyProject {
	return s.links.List()
}

func (s *RadarService) UpdateLink(id int64, in domain.UpdateTechnologyProjectInput) (*domain.TechnologyProject, error) {
	return s.links.Update(id, in)
}

// ---- radar view ----

// RadarView returns the render-ready view, served from the snapshot cache
// when possible. Cache failures are logged and fall through to a direct
// rebuild from the store.
func (s *RadarService) RadarView(ctx context.Context) *domain.RadarView {
	if s.snapshots != nil {
		view, err := s.snapshots.Get(ctx)
		if err == nil {
			return view
		}
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			log.Printf("radar snapshot read failed, rebuilding: %v", err)
		}
	}

	view := s.buildRadarView()

	if s.snapshots != nil {
		if err := s.snapshots.Set(ctx, view); err != nil {
			log.Printf("radar snapshot store failed: %v", err)
		}
	}
	return view
}

// RefreshSnapshot rebuilds the radar view and stores it in the cache. It is
// a no-op when the cache is disabled.
func (s *RadarService) RefreshSnapshot(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	return s.snapshots.Set(ctx, s.buildRadarView())
}

// buildRadarView groups technologies into (quadrant, ring) cells by their
// positional indices. Out-of-range indices degrade to the unclassified group
// instead of failing; the chart renders what it can.
func (s *RadarService) buildRadarView() *domain.RadarView {
	quadrants := s.quadrants.List()
	rings := s.rings.List()
	technologies := s.technologies.List()

	view := &domain.RadarView{
		Quadrants:    quadrants,
		Rings:        rings,
		Cells:        make([]domain.RadarCell, 0, len(quadrants)*len(rings)),
		Unclassified: []domain.Technology{},
		GeneratedAt:  time.Now().UTC(),
	}

	byCell := make(map[[2]int][]domain.Technology)
	for _, t := range technologies {
		if t.Quadrant < 0 || t.Quadrant >= len(quadrants) || t.Ring < 0 || t.Ring >= len(rings) {
			view.Unclassified = append(view.Unclassified, t)
			continue
		}
		key := [2]int{t.Quadrant, t.Ring}
		byCell[key] = append(byCell[key], t)
	}

	for qi := range quadrants {
		for ri := range rings {
			techs := byCell[[2]int{qi, ri}]
			if techs == nil {
				techs = []domain.Technology{}
			}
			view.Cells = append(view.Cells, domain.RadarCell{
				Quadrant:     qi,
				Ring:         ri,
				Technologies: techs,
			})
		}
	}
	return view
}

func (s *RadarService) invalidateSnapshot(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Invalidate(ctx); err != nil {
		log.Printf("radar snapshot invalidation failed: %v", err)
	}
}
