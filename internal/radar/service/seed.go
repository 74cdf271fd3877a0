package service

import (
	"context"
	"log"

	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// Seed populates the default radar catalog. It runs strictly in order:
// quadrants and rings first (technologies reference their creation indices),
// then technologies, then projects, and only after every project create has
// returned are the links created from the returned ids. Each step completes
// synchronously before the next starts, so a link can never reference an id
// that has not been assigned yet.
func (s *RadarService) Seed(ctx context.Context) {
	for _, q := range defaultQuadrants() {
		s.quadrants.Create(q)
	}
	for _, r := range defaultRings() {
		s.rings.Create(r)
	}

	techIDs := make(map[string]int64)
	for _, t := range sampleTechnologies() {
		created := s.technologies.Create(t)
		techIDs[created.Name] = created.ID
	}

	projectIDs := make(map[string]int64)
	for _, p := range sampleProjects() {
		created := s.projects.Create(p)
		projectIDs[created.Name] = created.ID
	}

	for _, l := range sampleLinks(techIDs, projectIDs) {
		s.links.Create(l)
	}

	log.Printf("seeded radar catalog: %d quadrants, %d rings, %d technologies, %d projects, %d links",
		len(s.quadrants.List()), len(s.rings.List()), len(s.technologies.List()),
		len(s.projects.List()), len(s.links.List()))

	if err := s.RefreshSnapshot(ctx); err != nil {
		log.Printf("initial radar snapshot failed: %v", err)
	}
}

func defaultQuadrants() []domain.CreateQuadrantInput {
	return []domain.CreateQuadrantInput{
		{Name: "Techniques", Description: "Ways of working: processes, practices and design approaches"},
		{Name: "Tools", Description: "Software tools supporting development and operations"},
		{Name: "Frameworks", Description: "Libraries and frameworks applications are built on"},
		{Name: "Platforms", Description: "Things we build software on top of: infrastructure and runtimes"},
	}
}

func defaultRings() []domain.CreateRingInput {
	return []domain.CreateRingInput{
		{Name: "Adopt", Description: "Proven and recommended for broad use", Color: strPtr("#5ba300")},
		{Name: "Trial", Description: "Worth pursuing on projects that can handle the risk", Color: strPtr("#009eb0")},
		{Name: "Assess", Description: "Worth exploring to understand the impact", Color: strPtr("#c7ba00")},
		{Name: "Hold", Description: "Proceed with caution on new work", Color: strPtr("#e09b96")},
	}
}

// Quadrant/ring values are positional indices into the slices above:
// quadrants 0=Techniques 1=Tools 2=Frameworks 3=Platforms,
// rings 0=Adopt 1=Trial 2=Assess 3=Hold.
func sampleTechnologies() []domain.CreateTechnologyInput {
	return []domain.CreateTechnologyInput{
		{
			Name:        "Docker",
			Description: "Container engine for packaging and running applications",
			Quadrant:    1, Ring: 0,
			Website: strPtr("https://www.docker.com"),
			Tags:    []string{"containers", "packaging"},
		},
		{
			Name:        "Docker Compose",
			Description: "Multi-container orchestration for local development",
			Quadrant:    1, Ring: 1,
			Website: strPtr("https://docs.docker.com/compose/"),
			Tags:    []string{"containers", "local-dev"},
		},
		{
			Name:        "Kubernetes",
			Description: "Container orchestration platform for production workloads",
			Quadrant:    3, Ring: 0,
			Website: strPtr("https://kubernetes.io"),
			Tags:    []string{"containers", "orchestration"},
		},
		{
			Name:        "Terraform",
			Description: "Declarative infrastructure as code",
			Quadrant:    1, Ring: 0,
			Website: strPtr("https://www.terraform.io"),
			Tags:    []string{"iac", "provisioning"},
		},
		{
			Name:        "Gin",
			Description: "HTTP web framework for Go services",
			Quadrant:    2, Ring: 1,
			Website: strPtr("https://gin-gonic.com"),
			Tags:    []string{"go", "http"},
		},
		{
			Name:        "React",
			Description: "Component-based UI library",
			Quadrant:    2, Ring: 0,
			Website: strPtr("https://react.dev"),
			Tags:    []string{"frontend", "ui"},
		},
		{
			Name:        "Redis",
			Description: "In-memory data structure store used as cache and broker",
			Quadrant:    3, Ring: 0,
			Website: strPtr("https://redis.io"),
			Tags:    []string{"cache", "key-value"},
		},
		{
			Name:        "Event Storming",
			Description: "Collaborative workshop format for exploring business domains",
			Quadrant:    0, Ring: 2,
			Tags: []string{"ddd", "workshop"},
		},
		{
			Name:        "Micro Frontends",
			Description: "Splitting browser applications along team boundaries",
			Quadrant:    0, Ring: 3,
			Tags: []string{"frontend", "architecture"},
		},
	}
}

func sampleProjects() []domain.CreateProjectInput {
	return []domain.CreateProjectInput{
		{
			Name:        "Radar Website",
			Description: "The public technology radar visualization",
			Status:      "active",
			Website:     strPtr("https://radar.example.com"),
			RepoURL:     strPtr("https://github.com/radar-hub/radar-website"),
		},
		{
			Name:        "Platform Migration",
			Description: "Moving legacy services onto the container platform",
			Status:      "in progress",
			RepoURL:     strPtr("https://github.com/radar-hub/platform-migration"),
		},
		{
			Name:        "Developer Portal",
			Description: "Internal portal for service catalogs and documentation",
			Status:      "planned",
		},
	}
}

func sampleLinks(techIDs, projectIDs map[string]int64) []domain.CreateTechnologyProjectInput {
	return []domain.CreateTechnologyProjectInput{
		{
			TechnologyID: techIDs["Kubernetes"],
			ProjectID:    projectIDs["Platform Migration"],
			Notes:        strPtr("Target runtime for all migrated services"),
		},
		{
			TechnologyID: techIDs["Docker"],
			ProjectID:    projectIDs["Platform Migration"],
		},
		{
			TechnologyID: techIDs["React"],
			ProjectID:    projectIDs["Radar Website"],
			Notes:        strPtr("Renders the radial chart"),
		},
		{
			TechnologyID: techIDs["Gin"],
			ProjectID:    projectIDs["Developer Portal"],
		},
		{
			TechnologyID: techIDs["Redis"],
			ProjectID:    projectIDs["Radar Website"],
			Notes:        strPtr("Snapshot cache for the radar view"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
