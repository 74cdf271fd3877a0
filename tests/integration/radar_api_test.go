package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/radar-hub/techradar-backend/internal/api/http"
	"github.com/radar-hub/techradar-backend/internal/bootstrap"
	"github.com/radar-hub/techradar-backend/internal/radar/cache"
	"github.com/radar-hub/techradar-backend/internal/radar/domain"
	"github.com/radar-hub/techradar-backend/internal/radar/repository"
	"github.com/radar-hub/techradar-backend/internal/radar/service"
)

// setupTestServer wires the full stack the way cmd/api does: miniredis-backed
// snapshot cache, seeded service, and the production router.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := service.NewRadarService(service.Deps{
		Technologies: repository.NewTechnologyRepository(),
		Quadrants:    repository.NewQuadrantRepository(),
		Rings:        repository.NewRingRepository(),
		Projects:     repository.NewProjectRepository(),
		Links:        repository.NewTechnologyProjectRepository(),
		Snapshots:    cache.NewSnapshotCache(client, time.Minute),
	})
	svc.Seed(context.Background())

	return bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "techradar-backend-test",
		Version:     "test",
		Radar:       svc,
		Cache:       client,
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealthReportsCacheUp(t *testing.T) {
	r := setupTestServer(t)

	rr := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Cache)
}

func TestSeededCatalogIsServed(t *testing.T) {
	r := setupTestServer(t)

	rr := do(t, r, http.MethodGet, "/api/v1/technologies?q=docker", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Technologies []domain.Technology `json:"technologies"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Technologies, 2)
	assert.Equal(t, "Docker", resp.Technologies[0].Name)
	assert.Equal(t, "Docker Compose", resp.Technologies[1].Name)
}

func TestRadarViewReflectsMutationsThroughCache(t *testing.T) {
	r := setupTestServer(t)

	rr := do(t, r, http.MethodGet, "/api/v1/radar", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, r, http.MethodPost, "/api/v1/technologies", gin.H{
		"name":        "Pulumi",
		"description": "Infrastructure as code with general-purpose languages",
		"quadrant":    1,
		"ring":        2,
		"tags":        []string{"iac"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, http.MethodGet, "/api/v1/radar", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Radar domain.RadarView `json:"radar"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	var found bool
	for _, cell := range resp.Radar.Cells {
		for _, tech := range cell.Technologies {
			if tech.Name == "Pulumi" {
				found = true
				assert.Equal(t, 1, cell.Quadrant)
				assert.Equal(t, 2, cell.Ring)
			}
		}
	}
	assert.True(t, found, "new technology should appear in the rebuilt radar view")
}

func TestFullEntityLifecycleOverHTTP(t *testing.T) {
	r := setupTestServer(t)

	rr := do(t, r, http.MethodPost, "/api/v1/projects", gin.H{
		"name":   "Search Revamp",
		"status": "proposed",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = do(t, r, http.MethodPost, "/api/v1/technology-project-links", gin.H{
		"technology_id": 1,
		"project_id":    created.Project.ID,
		"notes":         "candidate stack",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, http.MethodPatch, "/api/v1/projects/"+strconv.FormatInt(created.Project.ID, 10), gin.H{
		"status": "active",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "active", updated.Project.Status)
	assert.Equal(t, "Search Revamp", updated.Project.Name)
}
